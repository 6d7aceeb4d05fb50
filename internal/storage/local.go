package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores files on the local filesystem.
type Local struct{}

// NewLocal returns a local filesystem provider.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(name)
}

func (l *Local) ReadDir(ctx context.Context, name string) ([]fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, err
	}
	infos := make([]fs.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// removed between listing and stat
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (l *Local) Mkdir(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Mkdir(name, 0o755)
}

func (l *Local) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(name)
}

func (l *Local) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func (l *Local) Join(elem ...string) string {
	return filepath.Join(elem...)
}
