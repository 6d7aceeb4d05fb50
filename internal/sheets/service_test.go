package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevdesk-export/internal/report"
)

func TestExtractSpreadsheetID(t *testing.T) {
	id, err := extractSpreadsheetID("https://docs.google.com/spreadsheets/d/1AbC-d_ef/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, "1AbC-d_ef", id)

	_, err = extractSpreadsheetID("https://example.com/sheet")
	assert.Error(t, err)
}

func TestJournalValues(t *testing.T) {
	pay := time.Date(2022, time.February, 15, 0, 0, 0, 0, time.Local)
	rows := []report.Row{{
		Type:       report.TypeVoucher,
		Number:     "B-1",
		Contact:    "Acme GmbH",
		PayDate:    &pay,
		PaidAmount: decimal.RequireFromString("1234.5"),
		Categories: []string{"Porto", "Reisekosten"},
		Filename:   "2022-02-15-Acme GmbH-1.pdf",
	}}

	values := journalValues(rows)

	require.Len(t, values, 1)
	assert.Equal(t, []interface{}{
		"AR", "", "B-1", "Acme GmbH", "2022-02-15", "1.234,50 €", "Porto, Reisekosten", "2022-02-15-Acme GmbH-1.pdf",
	}, values[0])
	assert.Len(t, headerValues()[0], len(report.Header))
}

func TestNewSheetsService_RequiresCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("GOOGLE_CREDENTIALS", "")

	_, err := NewSheetsService(t.Context(), "https://docs.google.com/spreadsheets/d/abc/edit")
	assert.ErrorContains(t, err, "GOOGLE_CREDENTIALS")
}
