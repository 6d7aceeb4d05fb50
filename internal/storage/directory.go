package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-multierror"

	"sevdesk-export/internal/logger"
)

// ErrNotDirectory is returned when the export path exists but is a file.
var ErrNotDirectory = errors.New("path exists but is not a directory")

// DirectoryError describes why a directory cannot be used.
type DirectoryError struct {
	Op   string
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// PrepareDirectory makes sure dir is a usable directory. A missing directory
// is created, its parents must exist.
func PrepareDirectory(ctx context.Context, p Provider, dir string) error {
	info, err := p.Stat(ctx, dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return &DirectoryError{Op: "stat", Path: dir, Err: err}
		}
		if err := p.Mkdir(ctx, dir); err != nil {
			return &DirectoryError{Op: "mkdir", Path: dir, Err: err}
		}
		log := logger.WithComponent("storage")
		log.Debug().Str("dir", dir).Msg("Created export directory")
		return nil
	}
	if !info.IsDir() {
		return &DirectoryError{Op: "stat", Path: dir, Err: ErrNotDirectory}
	}
	return nil
}

// DeleteAllFiles removes every regular, non-hidden file directly inside dir
// and returns the number of removed files. Subdirectories are kept. All
// failed removals are reported together.
func DeleteAllFiles(ctx context.Context, p Provider, dir string) (int, error) {
	infos, err := p.ReadDir(ctx, dir)
	if err != nil {
		return 0, &DirectoryError{Op: "readdir", Path: dir, Err: err}
	}

	var result *multierror.Error
	removed := 0
	for _, info := range infos {
		if info.IsDir() || !info.Mode().IsRegular() || strings.HasPrefix(info.Name(), ".") {
			continue
		}
		if err := p.Remove(ctx, p.Join(dir, info.Name())); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		removed++
	}
	return removed, result.ErrorOrNil()
}
