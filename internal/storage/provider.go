// Package storage defines the data-directory file abstraction.
package storage

import "io/fs"

// File is one path/content pair of a batched write.
type File struct {
	Path    string
	Content []byte
}

// Provider is the interface for data-directory file operations.
type Provider interface {
	// Root returns the absolute path of the data directory.
	Root() string
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Stat returns file info for path (relative to the root).
	Stat(path string) (fs.FileInfo, error)
	// Write atomically writes content to path (relative to the root).
	Write(path string, content []byte) error
	// WriteAll stages every file before renaming any of them into place.
	WriteAll(files ...File) error
}
