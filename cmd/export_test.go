package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevdesk-export/internal/config"
)

func testConfig() *config.Config {
	start, end := config.DefaultRange(time.Date(2022, time.March, 5, 0, 0, 0, 0, time.Local))
	return &config.Config{
		APIToken:             "env-token",
		APIURL:               "https://my.sevdesk.de/api/v1/",
		Start:                start,
		End:                  end,
		Dir:                  "export",
		WebDAVAddress:        "https://dav.example.com",
		GoogleSheetWorksheet: "Journal",
		LogLevel:             "warn",
		LogFormat:            "console",
	}
}

func TestApplyFlags_FlagsOverrideEnvironment(t *testing.T) {
	cfg := testConfig()
	cmd := NewRootCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{
		"--start", "2022-01-01",
		"--end", "2022-01-31",
		"--dir", "/tmp/out",
		"-d", "-r",
		"--api-token", "flag-token",
		"--concurrency", "3",
	}))

	require.NoError(t, applyFlags(cmd, cfg))

	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.Local), cfg.Start)
	assert.Equal(t, config.EndOfDay(time.Date(2022, time.January, 31, 0, 0, 0, 0, time.Local)), cfg.End)
	assert.Equal(t, "/tmp/out", cfg.Dir)
	assert.True(t, cfg.DeleteExisting)
	assert.True(t, cfg.Report)
	assert.False(t, cfg.ExtraInfoFilename)
	assert.Equal(t, "flag-token", cfg.APIToken)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "https://dav.example.com", cfg.WebDAVAddress)
}

func TestApplyFlags_UnsetFlagsKeepEnvironment(t *testing.T) {
	cfg := testConfig()
	cmd := NewRootCmd(cfg)
	require.NoError(t, cmd.ParseFlags(nil))

	require.NoError(t, applyFlags(cmd, cfg))

	assert.Equal(t, "env-token", cfg.APIToken)
	assert.Equal(t, time.Date(2022, time.February, 1, 0, 0, 0, 0, time.Local), cfg.Start)
	assert.Equal(t, 28, cfg.End.Day())
}

func TestApplyFlags_InvalidDate(t *testing.T) {
	cfg := testConfig()
	cmd := NewRootCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--start", "01.02.2022"}))

	err := applyFlags(cmd, cfg)
	assert.ErrorContains(t, err, "--start")
}

func TestHelpHidesSecrets(t *testing.T) {
	cmd := NewRootCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), "env-token")
	assert.Contains(t, out.String(), "--extra-info-filename")
	assert.Contains(t, out.String(), "2022-02-01")
	assert.Contains(t, out.String(), "Exit-Code 1 bei ungültiger Konfiguration")
}

func TestRun_InvalidConfigurationFails(t *testing.T) {
	cfg := testConfig()
	cfg.APIToken = ""
	cmd := NewRootCmd(cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", t.TempDir()})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "SEVDESK_API_KEY / --api-token is required")
}

func TestJournalSheet_UnavailableSheetIsWarning(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("GOOGLE_CREDENTIALS", "")

	cfg := testConfig()
	cfg.Report = true
	cfg.GoogleSheetURL = "https://docs.google.com/spreadsheets/d/abc/edit"
	var out bytes.Buffer

	sink := journalSheet(t.Context(), cfg, newConsoleProgress(&out))

	assert.Nil(t, sink)
	assert.Contains(t, out.String(), "⚠️  Google Sheet nicht verfügbar")
}

func TestRun_UnusableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "export")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := testConfig()
	cfg.WebDAVAddress = ""
	cmd := NewRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", file})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Das Ausgabeverzeichnis "+file+" kann nicht verwendet werden")
}

func TestConsoleProgress(t *testing.T) {
	var out bytes.Buffer
	p := newConsoleProgress(&out)

	p.Begin("Lade Beleg-PDFs von sevDesk").Succeed("")
	p.Begin("Hole Rechnungen").Info("Keine Rechnungen gefunden")
	p.Begin("Lösche bestehende Dateien").Warn("Fehler beim Löschen, fahre fort")
	p.Begin("Hole Belegdaten").Fail("Fehler bei den Belegdaten von sevDesk: boom")

	assert.Equal(t, "✅ Lade Beleg-PDFs von sevDesk\n"+
		"ℹ️  Keine Rechnungen gefunden\n"+
		"⚠️  Fehler beim Löschen, fahre fort\n"+
		"❌ Fehler bei den Belegdaten von sevDesk: boom\n", out.String())
}
