package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sevdesk-export/internal/config"
	"sevdesk-export/internal/export"
	"sevdesk-export/internal/logger"
	"sevdesk-export/internal/sevdesk"
	"sevdesk-export/internal/sheets"
	"sevdesk-export/internal/storage"
)

func addExportFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.String("start", cfg.Start.Format(config.DateLayout), "Startdatum (yyyy-mm-dd)")
	flags.String("end", cfg.End.Format(config.DateLayout), "Enddatum (yyyy-mm-dd)")
	flags.String("dir", cfg.Dir, "Verzeichnis in dem die PDFs gespeichert werden sollen")
	flags.BoolP("delete", "d", false, "Löscht bestehende Dateien im Export-Verzeichnis")
	flags.BoolP("report", "r", false, "Fügt einen Bericht mit Infos zu allen exportierten Dateien an (csv)")
	flags.Bool("extra-info-filename", false, "Speichert zusätzliche Infos (wie Kategorien) in den Dateinamen")

	// Secrets have no visible default.
	flags.String("api-token", "", "API-Token für sevDesk. Einstellungen > Benutzer > API-Token. Alternativ auch via `.env` möglich")
	flags.String("webdav-address", cfg.WebDAVAddress, "Die Adresse unter der das WebDAV Verzeichnis erreichbar ist. Alternativ auch via `.env` möglich")
	flags.String("webdav-username", cfg.WebDAVUsername, "Der WebDAV Username. Alternativ auch via `.env` möglich")
	flags.String("webdav-password", "", "Das WebDAV Passwort. Alternativ auch via `.env` möglich")

	flags.Int("concurrency", cfg.Concurrency, "Maximale Anzahl paralleler Anfragen (0 = unbegrenzt)")
	flags.String("sheet-url", cfg.GoogleSheetURL, "Google Sheet, in das das Journal zusätzlich geschrieben wird (mit --report)")
}

// applyFlags copies every flag given on the command line into cfg.
// Flags that were not set keep the environment value.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("start") {
		value, _ := flags.GetString("start")
		start, err := config.ParseDate(value)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		cfg.Start = start
	}
	if flags.Changed("end") {
		value, _ := flags.GetString("end")
		end, err := config.ParseDate(value)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		cfg.End = config.EndOfDay(end)
	}

	stringFlags := map[string]*string{
		"dir":             &cfg.Dir,
		"api-token":       &cfg.APIToken,
		"webdav-address":  &cfg.WebDAVAddress,
		"webdav-username": &cfg.WebDAVUsername,
		"webdav-password": &cfg.WebDAVPassword,
		"sheet-url":       &cfg.GoogleSheetURL,
	}
	for name, target := range stringFlags {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	boolFlags := map[string]*bool{
		"delete":              &cfg.DeleteExisting,
		"report":              &cfg.Report,
		"extra-info-filename": &cfg.ExtraInfoFilename,
	}
	for name, target := range boolFlags {
		if flags.Changed(name) {
			*target, _ = flags.GetBool(name)
		}
	}

	if flags.Changed("concurrency") {
		cfg.Concurrency, _ = flags.GetInt("concurrency")
	}

	return nil
}

func runExport(cmd *cobra.Command, cfg *config.Config) error {
	log := logger.WithComponent("export")

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client, err := sevdesk.NewClient(cfg.ClientConfig())
	if err != nil {
		return err
	}

	log.Info().
		Str("start", cfg.Start.Format(config.DateLayout)).
		Str("end", cfg.End.Format(config.DateLayout)).
		Str("dir", cfg.Dir).
		Bool("webdav", cfg.WebDAVAddress != "").
		Bool("delete", cfg.DeleteExisting).
		Bool("report", cfg.Report).
		Int("concurrency", cfg.Concurrency).
		Msg("Starting export")

	progress := newConsoleProgress(cmd.OutOrStdout())
	exporter := export.New(client, storage.New(cfg.StorageConfig()), progress, export.Options{
		Start:                cfg.Start,
		End:                  cfg.End,
		Dir:                  cfg.Dir,
		DeleteExisting:       cfg.DeleteExisting,
		Report:               cfg.Report,
		CategoriesInFilename: cfg.ExtraInfoFilename,
		Concurrency:          cfg.Concurrency,
		JournalSheet:         cfg.GoogleSheetWorksheet,
	})

	if cfg.GoogleSheetURL != "" {
		if sink := journalSheet(ctx, cfg, progress); sink != nil {
			exporter.WithJournalSink(sink)
		}
	}

	summary, err := exporter.Run(ctx)
	if errors.Is(err, export.ErrDirectoryUnusable) {
		return fmt.Errorf("Das Ausgabeverzeichnis %s kann nicht verwendet werden: %w", cfg.Dir, err)
	}
	if err != nil {
		return err
	}

	log.Info().
		Int("saved_vouchers", summary.SavedVouchers).
		Int("saved_invoices", summary.SavedInvoices).
		Msg("Export completed")

	return nil
}

// journalSheet connects to the Google Sheet. A failed connection only
// disables the sheet.
func journalSheet(ctx context.Context, cfg *config.Config, progress export.Progress) export.JournalSink {
	if !cfg.Report {
		progress.Begin("Google Sheet wird nur zusammen mit --report beschrieben").Info("")
		return nil
	}

	service, err := sheets.NewSheetsService(ctx, cfg.GoogleSheetURL)
	if err != nil {
		log := logger.WithComponent("export")
		log.Warn().Err(err).Msg("Google Sheets unavailable")
		progress.Begin("Verbinde mit Google Sheet").Warn(fmt.Sprintf("Google Sheet nicht verfügbar: %s", err.Error()))
		return nil
	}
	return service
}
