package config

import (
	"embed"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// DefaultFS returns the embedded default configuration filesystem.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
