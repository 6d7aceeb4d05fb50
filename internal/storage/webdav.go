package storage

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/studio-b12/gowebdav"
)

// WebDAV stores files on a WebDAV share, e.g. a Nextcloud folder.
// Paths are relative to the configured address.
type WebDAV struct {
	client *gowebdav.Client
}

// NewWebDAV returns a provider for the share at address.
func NewWebDAV(address, username, password string) *WebDAV {
	return &WebDAV{client: gowebdav.NewClient(address, username, password)}
}

func (w *WebDAV) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := w.client.Stat(name)
	if err != nil {
		return nil, mapWebDAVError(err)
	}
	return info, nil
}

func (w *WebDAV) ReadDir(ctx context.Context, name string) ([]fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := w.client.ReadDir(name)
	if err != nil {
		return nil, mapWebDAVError(err)
	}
	return infos, nil
}

func (w *WebDAV) Mkdir(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapWebDAVError(w.client.Mkdir(name, 0o755))
}

func (w *WebDAV) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapWebDAVError(w.client.Remove(name))
}

func (w *WebDAV) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapWebDAVError(w.client.Write(name, data, 0o644))
}

func (w *WebDAV) Join(elem ...string) string {
	return path.Join(elem...)
}

// mapWebDAVError translates 404 responses into fs.ErrNotExist.
func mapWebDAVError(err error) error {
	if err == nil {
		return nil
	}
	if gowebdav.IsErrNotFound(err) {
		return fmt.Errorf("%w: %v", fs.ErrNotExist, err)
	}
	return err
}
