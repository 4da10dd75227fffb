package main

import (
	"flag"
	"fmt"

	"github.com/piwi3910/DoorCard/internal/export"
	"github.com/piwi3910/DoorCard/internal/store"
)

// runExport implements the export subcommand.
func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var (
		format   string
		output   string
		busyPath string
	)
	fs.StringVar(&format, "format", "pdf", "export format: pdf, labels, or xlsx")
	fs.StringVar(&output, "o", "", "output file path")
	fs.StringVar(&busyPath, "busy", "", "path to the busy file (default ~/.doorcard/busy.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		return fmt.Errorf("an output path is required: pass -o <file>")
	}

	busyPath, err := resolveBusyPath(busyPath)
	if err != nil {
		return err
	}

	placements, err := store.Load(busyPath)
	if err != nil {
		return fmt.Errorf("failed to load busy file: %w", err)
	}

	switch format {
	case "pdf":
		err = export.ExportPDF(output, placements)
	case "labels":
		err = export.ExportLabels(output, placements)
	case "xlsx":
		err = export.ExportXLSX(output, placements)
	default:
		return fmt.Errorf("unknown export format %q (want pdf, labels, or xlsx)", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d postcard(s) to %s\n", len(placements), output)
	return nil
}
