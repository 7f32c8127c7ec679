package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/minutary/minutary/internal/transcript"
	"github.com/minutary/minutary/internal/webserver"
	"github.com/spf13/afero"
)

func main() {
	var cfg webserver.Config
	appFs := afero.NewOsFs()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}
	if _, err := os.Stat(cfg.LibraryPath); os.IsNotExist(err) {
		log.Fatal(fmt.Errorf("directory '%s' does not exist, exiting", cfg.LibraryPath))
	}
	if err = os.MkdirAll(fmt.Sprintf("%s/minutary", homeDir), os.ModePerm); err != nil {
		log.Fatal(fmt.Errorf("couldn't create %s/minutary, exiting", homeDir))
	}

	cfg.HomeDir = homeDir
	if cfg.DBPath == "" {
		cfg.DBPath = fmt.Sprintf("%s/minutary/database.db", homeDir)
	}
	if len(cfg.JwtSecret) == 0 {
		log.Fatal("JWT_SECRET environment variable must be set")
	}

	readers := map[string]transcript.Reader{
		".txt": transcript.TxtReader{FS: appFs},
		".vtt": transcript.VttReader{FS: appFs},
	}

	run(cfg, readers, appFs)
}
