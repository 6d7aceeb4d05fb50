package export

import (
	"context"

	"sevdesk-export/internal/fanout"
	"sevdesk-export/internal/filename"
	"sevdesk-export/internal/logger"
	"sevdesk-export/internal/storage"
)

// SaveResult is the outcome of saving one document.
type SaveResult struct {
	FileName string
	Size     int
	Pages    int
	Err      error
}

// Saved reports whether the document was written.
func (r *SaveResult) Saved() bool {
	return r != nil && r.Err == nil
}

// SaveDocuments writes all documents into dir in parallel. A failed write
// is recorded in its result and does not stop the others. Nil documents
// yield nil results.
func SaveDocuments(ctx context.Context, p storage.Provider, documents []*Document, dir string, concurrency int) []*SaveResult {
	log := logger.WithComponent("saver")

	return fanout.Map(ctx, documents, concurrency, func(ctx context.Context, doc *Document) *SaveResult {
		if doc == nil {
			return nil
		}
		name := filename.Sanitize(doc.FileName)
		result := &SaveResult{FileName: name, Size: len(doc.Content), Pages: doc.Pages}
		if err := p.WriteFile(ctx, p.Join(dir, name), doc.Content); err != nil {
			result.Err = &DocumentError{Op: "save", RecordID: doc.RecordID, Err: err}
			log.Warn().
				Err(err).
				Str("file", name).
				Msg("Failed to save document")
		}
		return result
	})
}

// SavedBytes returns the total size of the successfully saved documents.
func SavedBytes(results []*SaveResult) int64 {
	var total int64
	for _, r := range results {
		if r.Saved() {
			total += int64(r.Size)
		}
	}
	return total
}

// SavedPages returns the total page count of the successfully saved PDFs.
func SavedPages(results []*SaveResult) int {
	total := 0
	for _, r := range results {
		if r.Saved() {
			total += r.Pages
		}
	}
	return total
}

// CountSaved returns the number of successfully saved documents.
func CountSaved(results []*SaveResult) int {
	n := 0
	for _, r := range results {
		if r.Saved() {
			n++
		}
	}
	return n
}
