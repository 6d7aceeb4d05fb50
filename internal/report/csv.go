package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sevdesk-export/internal/storage"
)

// JournalFile is the name of the journal in the export directory.
const JournalFile = "journal.csv"

// Header is the fixed column order of the journal.
var Header = []string{
	"Typ",
	"Rechnungs-/Belegdatum",
	"Nummer",
	"Kunde/Lieferant",
	"Zahlung Datum",
	"Zahlung Summe",
	"Kategorie",
	"Dateiname",
}

var printer = message.NewPrinter(language.German)

// WriteCSV writes the header and one line per row to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write journal header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row.Fields()); err != nil {
			return fmt.Errorf("write journal row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the journal to dir, replacing an existing one.
func SaveCSV(ctx context.Context, p storage.Provider, dir string, rows []Row) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return err
	}
	if err := p.WriteFile(ctx, p.Join(dir, JournalFile), buf.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", JournalFile, err)
	}
	return nil
}

// Fields returns the row as journal columns in Header order.
func (r Row) Fields() []string {
	return []string{
		r.Type,
		FormatDate(r.Date),
		r.Number,
		r.Contact,
		FormatDate(r.PayDate),
		FormatAmount(r.PaidAmount),
		strings.Join(r.Categories, ", "),
		r.Filename,
	}
}

// FormatDate renders d as YYYY-MM-DD in local time, or "" for nil.
func FormatDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.In(time.Local).Format("2006-01-02")
}

// FormatAmount renders the paid amount in German notation, e.g. "1.234,50 €".
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f €", amount.Round(2).InexactFloat64())
}
