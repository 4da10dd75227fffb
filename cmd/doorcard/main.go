// Package main provides the doorcard CLI for hanging postcards on an
// office door.
//
// Usage:
//
//	doorcard place -l          Place a landscape postcard
//	doorcard place -p          Place a portrait postcard
//	doorcard list              Show all placed postcards
//	doorcard export -format pdf -o door.pdf
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

const usage = `doorcard - random non-overlapping postcard placement on a door

Usage:
  doorcard <command> [options]

Commands:
  place       Pick a random free spot for a new postcard
  list        Show all placed postcards
  export      Export the placed postcards to a file
  version     Print version information
  help        Show this help message

Examples:
  doorcard place -l               Place a landscape postcard
  doorcard place -p -v 2          Place a portrait postcard, chatty logging
  doorcard place -l -d            Dry run: pick a spot but do not save it
  doorcard place -l -obstacles door.dxf
                                  Avoid door hardware from a DXF drawing
  doorcard list                   Show the current door state
  doorcard export -format pdf -o door.pdf
                                  Render the door layout as a PDF
  doorcard export -format labels -o labels.pdf
                                  Generate QR labels for all cards
  doorcard export -format xlsx -o cards.xlsx
                                  Write a spreadsheet report
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "place":
		if err := runPlace(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := runList(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "export":
		if err := runExport(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("doorcard version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
