package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SEVDESK_API_KEY", "SEVDESK_API_URL", "SEVDESK_TIMEOUT", "EXPORT_DIR", "EXPORT_CONCURRENCY",
		"WEBDAV_ADDRESS", "WEBDAV_USERNAME", "WEBDAV_PASSWORD", "GOOGLE_SHEET_URL", "GOOGLE_SHEET_WORKSHEET",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_TIME_FORMAT", "LOG_OUTPUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "export", cfg.Dir)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.Concurrency)
	assert.Equal(t, "Journal", cfg.GoogleSheetWorksheet)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "stderr", cfg.LogOutput)
	assert.Equal(t, 1, cfg.Start.Day())
	assert.True(t, cfg.End.After(cfg.Start))

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEVDESK_API_KEY / --api-token is required")
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEVDESK_API_KEY", "token")
	t.Setenv("EXPORT_DIR", "/tmp/buchhaltung")
	t.Setenv("SEVDESK_TIMEOUT", "5s")
	t.Setenv("EXPORT_CONCURRENCY", "4")
	t.Setenv("WEBDAV_ADDRESS", "https://cloud.example.com/remote.php/dav/files/me")
	t.Setenv("WEBDAV_USERNAME", "me")
	t.Setenv("WEBDAV_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/buchhaltung", cfg.Dir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	client := cfg.ClientConfig()
	assert.Equal(t, "token", client.Token)
	assert.Equal(t, 4, client.Concurrency)

	store := cfg.StorageConfig()
	assert.Equal(t, "me", store.WebDAVUsername)
	assert.Equal(t, "pw", store.WebDAVPassword)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXPORT_CONCURRENCY", "many")
	_, err := Load()
	assert.ErrorContains(t, err, "EXPORT_CONCURRENCY")

	clearEnv(t)
	t.Setenv("SEVDESK_TIMEOUT", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "SEVDESK_TIMEOUT")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	cfg.APIToken = "token"
	cfg.Concurrency = -1
	cfg.WebDAVAddress = "not a url"
	cfg.LogLevel = "loud"
	cfg.Start, cfg.End = cfg.End, cfg.Start

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
	assert.Contains(t, err.Error(), "EXPORT_CONCURRENCY / --concurrency must not be negative")
	assert.Contains(t, err.Error(), "WEBDAV_ADDRESS / --webdav-address must be a URL")
	assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-02-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.February, 15, 0, 0, 0, 0, time.Local), d)

	_, err = ParseDate("15.02.2022")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2022, time.February, 28, 10, 0, 0, 0, time.UTC)
	end := EndOfDay(d)
	assert.Equal(t, 28, end.Day())
	assert.Equal(t, time.March, end.Add(time.Nanosecond).Month())
}

func TestDefaultRange(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantStart time.Time
		wantLast  int
	}{
		{time.Date(2022, time.March, 10, 8, 0, 0, 0, time.UTC), time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC), time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
	}
	for _, tt := range tests {
		start, end := DefaultRange(tt.now)
		assert.Equal(t, tt.wantStart, start)
		assert.Equal(t, tt.wantStart.Month(), end.Month())
		assert.Equal(t, tt.wantLast, end.Day())
		assert.Equal(t, EndOfDay(end), end)
	}
}
