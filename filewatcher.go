//go:build !linux

package main

import (
	"github.com/minutary/minutary/internal/index"
)

func fileWatcher(idx *index.BleveIndexer, libraryPath string) {
}
