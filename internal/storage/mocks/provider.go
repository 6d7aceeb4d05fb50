package mocks

import (
	"context"
	"io/fs"
	"path"
	"time"

	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (m *Provider) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	args := m.Called(ctx, name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *Provider) ReadDir(ctx context.Context, name string) ([]fs.FileInfo, error) {
	args := m.Called(ctx, name)
	infos, _ := args.Get(0).([]fs.FileInfo)
	return infos, args.Error(1)
}

func (m *Provider) Mkdir(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *Provider) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *Provider) WriteFile(ctx context.Context, name string, data []byte) error {
	args := m.Called(ctx, name, data)
	return args.Error(0)
}

// Join is not mocked, paths are joined with forward slashes.
func (m *Provider) Join(elem ...string) string {
	return path.Join(elem...)
}

// FileInfo is a static fs.FileInfo for ReadDir and Stat expectations.
type FileInfo struct {
	FileName string
	Dir      bool
}

func (f FileInfo) Name() string { return f.FileName }
func (f FileInfo) Size() int64  { return 0 }
func (f FileInfo) Mode() fs.FileMode {
	if f.Dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (f FileInfo) ModTime() time.Time { return time.Time{} }
func (f FileInfo) IsDir() bool        { return f.Dir }
func (f FileInfo) Sys() any           { return nil }
