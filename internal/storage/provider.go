// Package storage abstracts the export target. Documents and the journal
// are written through a Provider, which is either the local filesystem or a
// WebDAV share.
package storage

import (
	"context"
	"io/fs"
)

// Provider is the set of filesystem operations the export needs.
// Errors for missing paths match fs.ErrNotExist.
type Provider interface {
	// Stat describes the file or directory at name.
	Stat(ctx context.Context, name string) (fs.FileInfo, error)

	// ReadDir lists the entries of the directory name.
	ReadDir(ctx context.Context, name string) ([]fs.FileInfo, error)

	// Mkdir creates the directory name. Parents are not created.
	Mkdir(ctx context.Context, name string) error

	// Remove deletes the file name.
	Remove(ctx context.Context, name string) error

	// WriteFile creates or truncates name and writes data to it.
	WriteFile(ctx context.Context, name string, data []byte) error

	// Join builds a path with the separator of the backend.
	Join(elem ...string) string
}

// Config selects and configures a Provider.
type Config struct {
	WebDAVAddress  string
	WebDAVUsername string
	WebDAVPassword string
}

// New returns a WebDAV provider when an address is configured and the local
// filesystem otherwise.
func New(cfg Config) Provider {
	if cfg.WebDAVAddress != "" {
		return NewWebDAV(cfg.WebDAVAddress, cfg.WebDAVUsername, cfg.WebDAVPassword)
	}
	return NewLocal()
}
