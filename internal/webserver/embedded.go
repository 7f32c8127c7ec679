package webserver

import (
	"embed"
	"io/fs"
	"log"
)

var (
	//go:embed embedded
	embedded embed.FS

	viewsFS        fs.FS
	cssFS          fs.FS
	translationsFS fs.FS
)

func init() {
	var err error

	if viewsFS, err = fs.Sub(embedded, "embedded/views"); err != nil {
		log.Fatal(err)
	}
	if cssFS, err = fs.Sub(embedded, "embedded/css"); err != nil {
		log.Fatal(err)
	}
	if translationsFS, err = fs.Sub(embedded, "embedded/translations"); err != nil {
		log.Fatal(err)
	}
}
