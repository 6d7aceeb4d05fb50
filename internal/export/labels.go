package export

import (
	"fmt"
	"time"

	"sevdesk-export/internal/record"
)

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatGermanDate renders t like "15. Februar 2022".
func FormatGermanDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonths[t.Month()-1], t.Year())
}

// stageLabels are the user facing messages of one record kind.
type stageLabels struct {
	fetch        string
	fetchNone    string
	fetchFailed  string
	download     string
	downloadNone string
	save         string
	saveNone     string
	saved        string
	plural       string
}

var labels = map[record.Kind]stageLabels{
	record.Vouchers: {
		fetch:        "Hole Belegdaten von sevDesk zwischen %s und %s",
		fetchNone:    "Keine Belege gefunden",
		fetchFailed:  "Fehler bei den Belegdaten von sevDesk: %s",
		download:     "Lade Beleg-PDFs von sevDesk",
		downloadNone: "Keine Beleg-PDFs gefunden",
		save:         "Speichere Beleg-PDFs im Ordner",
		saveNone:     "Keine Beleg-PDFs gespeichert",
		saved:        "%d Belege wurden heruntergeladen und in %s gespeichert",
		plural:       "Belege",
	},
	record.Invoices: {
		fetch:        "Hole Rechnungen von sevDesk zwischen %s und %s",
		fetchNone:    "Keine Rechnungen gefunden",
		fetchFailed:  "Fehler bei den Rechnungen von sevDesk: %s",
		download:     "Lade Rechnung-PDFs von sevDesk",
		downloadNone: "Keine Rechnung-PDFs gefunden",
		save:         "Speichere Rechnung-PDFs im Ordner",
		saveNone:     "Keine Rechnung-PDFs gespeichert",
		saved:        "%d Rechnungen wurden heruntergeladen und in %s gespeichert",
		plural:       "Rechnungen",
	},
}
