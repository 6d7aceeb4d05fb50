package export

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryUnusable is returned when the export directory can neither
	// be found nor created. It is the only error that aborts a run.
	ErrDirectoryUnusable = errors.New("export directory cannot be used")

	// ErrUnknownKind is returned for a record kind without download endpoint.
	ErrUnknownKind = errors.New("unknown record kind")
)

// DocumentError wraps a failure to download or save a single document.
type DocumentError struct {
	// Op is the step that failed ("download", "decode", "save").
	Op string

	// RecordID is the sevDesk id of the voucher or invoice.
	RecordID string

	// Err is the underlying error.
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("export: %s of document %s failed: %v", e.Op, e.RecordID, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
