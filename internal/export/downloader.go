package export

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"

	"sevdesk-export/internal/fanout"
	"sevdesk-export/internal/logger"
	"sevdesk-export/internal/record"
	"sevdesk-export/pkg/models"
	"sevdesk-export/pkg/services"
)

// Document is a downloaded attachment ready to be saved.
type Document struct {
	Content  []byte
	FileName string
	RecordID string

	// Pages is the page count of PDF documents, zero if unknown.
	Pages int
}

// Downloader fetches the documents of vouchers and invoices.
type Downloader struct {
	api            services.AccountingAPI
	withCategories bool
	concurrency    int
	log            zerolog.Logger
}

// NewDownloader creates a downloader. withCategories appends the voucher
// categories to the filenames, concurrency caps parallel downloads (zero:
// all at once).
func NewDownloader(api services.AccountingAPI, withCategories bool, concurrency int) *Downloader {
	return &Downloader{
		api:            api,
		withCategories: withCategories,
		concurrency:    concurrency,
		log:            logger.WithComponent("downloader"),
	}
}

// Download fetches the documents of all records in parallel. Records
// without a document and records whose download fails are left out, the
// result keeps the order of records otherwise.
func (d *Downloader) Download(ctx context.Context, kind record.Kind, records []record.Record) []*Document {
	results := fanout.Map(ctx, records, d.concurrency, func(ctx context.Context, r record.Record) *Document {
		doc, err := d.download(ctx, kind, r)
		if err != nil {
			d.log.Debug().
				Err(err).
				Str("kind", string(kind)).
				Str("id", r.ID).
				Msg("Skipping document")
			return nil
		}
		return doc
	})

	documents := make([]*Document, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			documents = append(documents, doc)
		}
	}

	d.log.Info().
		Str("kind", string(kind)).
		Int("records", len(records)).
		Int("documents", len(documents)).
		Msg("Downloaded documents")

	return documents
}

// download returns nil without error for records that have no document.
func (d *Downloader) download(ctx context.Context, kind record.Kind, r record.Record) (*Document, error) {
	var (
		content *models.DocumentContent
		err     error
	)
	switch kind {
	case record.Vouchers:
		content, err = d.api.DownloadVoucherDocument(ctx, r.ID)
	case record.Invoices:
		content, err = d.api.DownloadInvoicePDF(ctx, r.ID)
	default:
		return nil, &DocumentError{Op: "download", RecordID: r.ID, Err: fmt.Errorf("%w: %q", ErrUnknownKind, kind)}
	}
	if err != nil {
		return nil, &DocumentError{Op: "download", RecordID: r.ID, Err: err}
	}
	if content == nil {
		return nil, nil
	}

	data := []byte(content.Content)
	if content.Base64Encoded {
		data, err = base64.StdEncoding.DecodeString(content.Content)
		if err != nil {
			return nil, &DocumentError{Op: "decode", RecordID: r.ID, Err: err}
		}
	}

	doc := &Document{
		Content:  data,
		FileName: r.FileName(d.withCategories),
		RecordID: r.ID,
	}

	// Unreadable PDFs are still saved, sevDesk is the source of truth.
	if isPDF(r.Extension()) {
		pages, err := pageCount(data)
		if err != nil {
			d.log.Warn().
				Err(err).
				Str("kind", string(kind)).
				Str("id", r.ID).
				Str("file", doc.FileName).
				Msg("Document is not a readable PDF")
		} else {
			doc.Pages = pages
		}
	}

	return doc, nil
}
