// Package export runs an export: it fetches vouchers and invoices, downloads
// their documents, saves them to the target storage and writes the journal.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/rs/zerolog"

	"sevdesk-export/internal/logger"
	"sevdesk-export/internal/record"
	"sevdesk-export/internal/report"
	"sevdesk-export/internal/storage"
	"sevdesk-export/pkg/models"
	"sevdesk-export/pkg/services"
)

// Options control a single export run.
type Options struct {
	// Start and End bound the pay dates of the exported records.
	Start time.Time
	End   time.Time

	// Dir is the target directory on the storage provider.
	Dir string

	// DeleteExisting removes all non-hidden files from Dir first.
	DeleteExisting bool

	// Report writes journal.csv after the documents.
	Report bool

	// CategoriesInFilename appends voucher categories to the filenames.
	CategoriesInFilename bool

	// Concurrency caps parallel requests and writes, zero means no cap.
	Concurrency int

	// JournalSheet is the worksheet the journal is appended to when a
	// JournalSink is configured.
	JournalSheet string
}

// JournalSink receives the journal in addition to the CSV file.
type JournalSink interface {
	WriteJournal(ctx context.Context, rows []report.Row, sheetName string) error
}

// Summary is the result of a run.
type Summary struct {
	Vouchers      int
	Invoices      int
	SavedVouchers int
	SavedInvoices int
	SavedBytes    int64
	SavedPages    int
	JournalRows   int
	JournalSaved  bool
}

// Exporter wires the API, the storage and the progress output.
type Exporter struct {
	api      services.AccountingAPI
	store    storage.Provider
	journal  JournalSink
	progress Progress
	opts     Options
	log      zerolog.Logger
}

// New creates an exporter. progress may be nil.
func New(api services.AccountingAPI, store storage.Provider, progress Progress, opts Options) *Exporter {
	if progress == nil {
		progress = Discard
	}
	return &Exporter{
		api:      api,
		store:    store,
		progress: progress,
		opts:     opts,
		log:      logger.WithComponent("export"),
	}
}

// WithJournalSink adds a second journal target.
func (e *Exporter) WithJournalSink(sink JournalSink) *Exporter {
	e.journal = sink
	return e
}

// Run performs the export. Only an unusable target directory is returned as
// error; failures of a stage end that stage and are shown through Progress.
func (e *Exporter) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	if err := storage.PrepareDirectory(ctx, e.store, e.opts.Dir); err != nil {
		return summary, fmt.Errorf("%w: %s: %v", ErrDirectoryUnusable, e.opts.Dir, err)
	}

	e.deleteExisting(ctx)

	var rows []report.Row

	vouchers, saved, ok := e.exportVouchers(ctx, summary)
	summary.Vouchers = len(vouchers)
	summary.SavedVouchers = saved
	if ok && e.opts.Report {
		rows = append(rows, report.BuildVoucherRows(vouchers, e.opts.CategoriesInFilename)...)
	}

	invoices, saved, ok := e.exportInvoices(ctx, summary)
	summary.Invoices = len(invoices)
	summary.SavedInvoices = saved
	if ok && e.opts.Report {
		rows = append(rows, report.BuildInvoiceRows(invoices, e.opts.CategoriesInFilename)...)
	}

	if e.opts.Report {
		summary.JournalRows = len(rows)
		summary.JournalSaved = e.writeJournal(ctx, rows)
	}

	e.log.Info().
		Int("vouchers", summary.Vouchers).
		Int("saved_vouchers", summary.SavedVouchers).
		Int("invoices", summary.Invoices).
		Int("saved_invoices", summary.SavedInvoices).
		Str("size", units.HumanSize(float64(summary.SavedBytes))).
		Int("pages", summary.SavedPages).
		Int("journal_rows", summary.JournalRows).
		Msg("Export finished")

	return summary, nil
}

func (e *Exporter) deleteExisting(ctx context.Context) {
	if !e.opts.DeleteExisting {
		e.progress.Begin("Lösche keine bestehenden Dateien").Info("")
		return
	}

	step := e.progress.Begin("Lösche bestehende Dateien")
	removed, err := storage.DeleteAllFiles(ctx, e.store, e.opts.Dir)
	if err != nil {
		e.log.Warn().Err(err).Str("dir", e.opts.Dir).Msg("Failed to delete existing files")
		step.Warn("Fehler beim Löschen, fahre fort")
		return
	}
	e.log.Debug().Int("count", removed).Msg("Deleted existing files")
	step.Succeed("")
}

func (e *Exporter) exportVouchers(ctx context.Context, summary *Summary) ([]models.Voucher, int, bool) {
	l := labels[record.Vouchers]
	step := e.progress.Begin(fmt.Sprintf(l.fetch, FormatGermanDate(e.opts.Start), FormatGermanDate(e.opts.End)))

	vouchers, err := e.api.FetchVouchers(ctx, e.opts.Start, e.opts.End)
	if err != nil {
		e.log.Error().Err(err).Msg("Fetching vouchers failed")
		step.Fail(fmt.Sprintf(l.fetchFailed, err.Error()))
		return nil, 0, false
	}
	if len(vouchers) == 0 {
		step.Info(l.fetchNone)
		return vouchers, 0, false
	}
	step.Succeed("")

	saved, ok := e.downloadAndSave(ctx, record.Vouchers, record.FromVouchers(vouchers), summary)
	return vouchers, saved, ok
}

func (e *Exporter) exportInvoices(ctx context.Context, summary *Summary) ([]models.Invoice, int, bool) {
	l := labels[record.Invoices]
	step := e.progress.Begin(fmt.Sprintf(l.fetch, FormatGermanDate(e.opts.Start), FormatGermanDate(e.opts.End)))

	invoices, err := e.api.FetchInvoices(ctx, e.opts.Start, e.opts.End)
	if err != nil {
		e.log.Error().Err(err).Msg("Fetching invoices failed")
		step.Fail(fmt.Sprintf(l.fetchFailed, err.Error()))
		return nil, 0, false
	}
	if len(invoices) == 0 {
		step.Info(l.fetchNone)
		return invoices, 0, false
	}
	step.Succeed("")

	saved, ok := e.downloadAndSave(ctx, record.Invoices, record.FromInvoices(invoices), summary)
	return invoices, saved, ok
}

// downloadAndSave reports false when the stage ended without saved files.
func (e *Exporter) downloadAndSave(ctx context.Context, kind record.Kind, records []record.Record, summary *Summary) (int, bool) {
	l := labels[kind]

	step := e.progress.Begin(l.download)
	documents := NewDownloader(e.api, e.opts.CategoriesInFilename, e.opts.Concurrency).Download(ctx, kind, records)
	if len(documents) == 0 {
		step.Info(l.downloadNone)
		return 0, false
	}
	step.Succeed("")

	step = e.progress.Begin(l.save)
	results := SaveDocuments(ctx, e.store, documents, e.opts.Dir, e.opts.Concurrency)
	saved := CountSaved(results)
	size := SavedBytes(results)
	pages := SavedPages(results)
	summary.SavedBytes += size
	summary.SavedPages += pages
	if saved == 0 {
		step.Info(l.saveNone)
		return 0, false
	}
	step.Succeed("")

	e.progress.Begin(fmt.Sprintf(l.saved, saved, e.opts.Dir)).Succeed("")
	e.log.Info().
		Str("kind", string(kind)).
		Int("documents", len(documents)).
		Int("saved", saved).
		Str("size", units.HumanSize(float64(size))).
		Int("pages", pages).
		Str("dir", e.opts.Dir).
		Msgf("Saved %s", l.plural)

	return saved, true
}

func (e *Exporter) writeJournal(ctx context.Context, rows []report.Row) bool {
	step := e.progress.Begin("Speichere Journal")
	if err := report.SaveCSV(ctx, e.store, e.opts.Dir, rows); err != nil {
		e.log.Error().Err(err).Msg("Writing journal failed")
		step.Fail(fmt.Sprintf("Fehler beim Speichern des Journals: %s", err.Error()))
		return false
	}
	step.Succeed(fmt.Sprintf("Journal wurde in %s gespeichert", report.JournalFile))

	if e.journal != nil {
		sheetStep := e.progress.Begin("Schreibe Journal in Google Sheet")
		if err := e.journal.WriteJournal(ctx, rows, e.opts.JournalSheet); err != nil {
			e.log.Warn().Err(err).Msg("Writing journal to Google Sheet failed")
			sheetStep.Warn(fmt.Sprintf("Journal konnte nicht in Google Sheet geschrieben werden: %s", err.Error()))
		} else {
			sheetStep.Succeed("")
		}
	}
	return true
}
