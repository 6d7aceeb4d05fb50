package storage

import (
	"context"
	"errors"
	"io/fs"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/webdav"
)

func newWebDAVServer(t *testing.T) *WebDAV {
	t.Helper()
	srv := httptest.NewServer(&webdav.Handler{
		FileSystem: webdav.NewMemFS(),
		LockSystem: webdav.NewMemLS(),
	})
	t.Cleanup(srv.Close)
	return NewWebDAV(srv.URL, "", "")
}

func TestWebDAV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newWebDAVServer(t)

	_, err := p.Stat(ctx, "/export")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	require.NoError(t, PrepareDirectory(ctx, p, "/export"))
	require.NoError(t, p.WriteFile(ctx, p.Join("/export", "a.pdf"), []byte("%PDF-1.4")))
	require.NoError(t, p.WriteFile(ctx, p.Join("/export", "b.pdf"), []byte("%PDF-1.4")))

	infos, err := p.ReadDir(ctx, "/export")
	require.NoError(t, err)
	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.ElementsMatch(t, []string{"a.pdf", "b.pdf"}, names)

	removed, err := DeleteAllFiles(ctx, p, "/export")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	infos, err = p.ReadDir(ctx, "/export")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestWebDAV_PrepareDirectoryRejectsFile(t *testing.T) {
	ctx := context.Background()
	p := newWebDAVServer(t)

	require.NoError(t, p.WriteFile(ctx, "/export", []byte("x")))

	err := PrepareDirectory(ctx, p, "/export")
	assert.ErrorIs(t, err, ErrNotDirectory)
}
