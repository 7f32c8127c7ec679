package main

import (
	"log"

	"github.com/minutary/minutary/internal/index"
	"github.com/rjeczalik/notify"
)

func fileWatcher(idx *index.BleveIndexer, libraryPath string) {
	log.Printf("Starting file watcher on %s\n", libraryPath)
	c := make(chan notify.EventInfo, 1)
	if err := notify.Watch(libraryPath, c, notify.InCloseWrite, notify.InMovedTo, notify.InMovedFrom, notify.InDelete); err != nil {
		log.Fatal(err)
	}

	defer notify.Stop(c)

	for ei := range c {
		switch ei.Event() {
		case notify.InCloseWrite, notify.InMovedTo:
			if _, err := idx.AddFile(ei.Path()); err != nil {
				log.Printf("Error indexing new file: %s\n", ei.Path())
			}
		case notify.InDelete, notify.InMovedFrom:
			if err := idx.RemoveFile(ei.Path()); err != nil {
				log.Printf("Error removing file from index: %s\n", ei.Path())
			}
		}
	}
}
