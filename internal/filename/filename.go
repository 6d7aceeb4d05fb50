// Package filename derives the names under which exported documents are
// stored. Names are sortable by pay date, readable through the contact name
// and unique through the sevDesk id.
package filename

import (
	"strings"
	"time"
)

// DefaultExtension is used when a document does not tell its own type.
const DefaultExtension = "pdf"

const dateLayout = "2006-01-02"

// Build joins the non-empty parts payDate, name, id and extraInfo with "-"
// and appends the extension. The date is rendered in the local time zone so
// it matches the wall-clock date where the export runs.
//
// The result is not sanitized, see Sanitize.
func Build(payDate *time.Time, name, id string, extraInfo []string, extension string) string {
	parts := make([]string, 0, 4)
	if payDate != nil && !payDate.IsZero() {
		parts = append(parts, payDate.In(time.Local).Format(dateLayout))
	}
	if name != "" {
		parts = append(parts, name)
	}
	if id != "" {
		parts = append(parts, id)
	}
	if extra := strings.Join(extraInfo, ","); extra != "" {
		parts = append(parts, extra)
	}
	if extension == "" {
		extension = DefaultExtension
	}
	return strings.Join(parts, "-") + "." + extension
}

// Extension picks the file extension of an attachment. An explicit extension
// wins over the default, a suffix in the original filename wins over both.
func Extension(extension, originalName string) string {
	ext := DefaultExtension
	if extension != "" {
		ext = strings.TrimPrefix(extension, ".")
	}
	if i := strings.LastIndex(originalName, "."); i >= 0 && i < len(originalName)-1 {
		ext = originalName[i+1:]
	}
	return ext
}
