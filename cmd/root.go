package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sevdesk-export/internal/config"
	"sevdesk-export/internal/logger"
)

var version = "1.0.0"

// NewRootCmd builds the sevdesk-export command. Flag defaults are taken
// from cfg so the help output shows the effective values.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sevdesk-export",
		Short: "Exportiert Belege und Rechnungen aus sevDesk",
		Long: `sevdesk-export lädt alle Belege und Rechnungen, die im angegebenen Zeitraum
bezahlt wurden, von sevDesk herunter und speichert die PDFs in einem lokalen
Verzeichnis oder per WebDAV.

Die Dateinamen haben die Form <Zahlungsdatum>-<Kontakt>-<ID>.<Endung>.
Mit --report wird zusätzlich ein Journal (journal.csv) geschrieben.

Exit-Code 1 bei ungültiger Konfiguration (z.B. fehlendem API-Token) oder
wenn das Ausgabeverzeichnis nicht verwendet werden kann. Fehler beim Laden
einzelner Belege oder Rechnungen brechen den Export nicht ab.

Umgebungsvariablen (auch via .env):
  SEVDESK_API_KEY  - API-Token für sevDesk
  EXPORT_DIR       - Zielverzeichnis
  WEBDAV_ADDRESS   - Adresse des WebDAV Verzeichnisses
  WEBDAV_USERNAME  - WebDAV Username
  WEBDAV_PASSWORD  - WebDAV Passwort
  GOOGLE_SHEET_URL - Google Sheet, in das das Journal geschrieben wird`,
		Example: `  sevdesk-export --start 2022-02-01 --end 2022-02-28 --dir ~/buchhaltung/2022/02 --delete

  # Export mit Journal und Kategorien im Dateinamen
  sevdesk-export --report --extra-info-filename`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, cfg)
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
	addExportFlags(rootCmd, cfg)

	return rootCmd
}

func Execute(cfg *config.Config) {
	log := logger.WithComponent("cmd")

	if err := NewRootCmd(cfg).Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
