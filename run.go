package main

import (
	"fmt"
	"log"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/minutary/minutary/internal/index"
	"github.com/minutary/minutary/internal/transcript"
	"github.com/minutary/minutary/internal/webserver"
	"github.com/minutary/minutary/internal/webserver/infrastructure"
	"github.com/spf13/afero"
)

func run(cfg webserver.Config, readers map[string]transcript.Reader, appFs afero.Fs) {
	var idx *index.BleveIndexer

	indexPath := fmt.Sprintf("%s/minutary/index", cfg.HomeDir)
	indexFile, err := bleve.Open(indexPath)
	if err == nil {
		idx = index.NewBleve(indexFile, cfg.LibraryPath, readers)
	}
	if err == bleve.ErrorIndexPathDoesNotExist {
		log.Println("No index found, creating a new one")
		indexFile, err = bleve.New(indexPath, index.Mapping())
		if err != nil {
			log.Fatal(err)
		}
		cfg.SkipIndex = false
		idx = index.NewBleve(indexFile, cfg.LibraryPath, readers)
	}
	if idx == nil {
		log.Fatal(err)
	}
	defer idx.Close()

	if !cfg.SkipIndex {
		go reindex(idx, appFs, cfg.BatchSize, cfg.LibraryPath)
	}

	db := infrastructure.Connect(cfg.DBPath)
	controllers := webserver.SetupControllers(cfg, db, idx, appFs)
	app := webserver.New(cfg, controllers)

	fmt.Printf("Minutary started listening on port %d\n\n", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

func reindex(idx *index.BleveIndexer, appFs afero.Fs, batchSize int, libraryPath string) {
	start := time.Now()
	log.Printf("Indexing transcripts at %s, this can take a while depending on the size of your library.\n", libraryPath)
	if err := idx.AddLibrary(appFs, batchSize); err != nil {
		log.Fatal(err)
	}
	log.Printf("Indexing finished, took %d seconds\n", int(time.Since(start).Seconds()))
	fileWatcher(idx, libraryPath)
}
