package main

import (
	"flag"
	"fmt"

	"github.com/piwi3910/DoorCard/internal/model"
	"github.com/piwi3910/DoorCard/internal/store"
)

// runList implements the list subcommand. It prints every placed
// postcard plus a coverage summary.
func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var busyPath string
	fs.StringVar(&busyPath, "busy", "", "path to the busy file (default ~/.doorcard/busy.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	busyPath, err := resolveBusyPath(busyPath)
	if err != nil {
		return err
	}

	placements, err := store.Load(busyPath)
	if err != nil {
		return fmt.Errorf("failed to load busy file: %w", err)
	}

	if len(placements) == 0 {
		fmt.Println("The door is empty.")
		return nil
	}

	fmt.Printf("%-6s %-6s %-7s %-7s %s\n", "x", "z", "width", "height", "orientation")
	used := 0
	for _, p := range placements {
		fmt.Printf("%-6d %-6d %-7d %-7d %s\n",
			p.Rect.X, p.Rect.Z, p.Rect.Width, p.Rect.Height, p.Orientation)
		used += p.Rect.Width * p.Rect.Height
	}

	door := model.Door
	doorArea := door.Width * door.Height
	fmt.Printf("\n%d postcard(s), %d of %d mm² used (%.1f%%)\n",
		len(placements), used, doorArea, float64(used)/float64(doorArea)*100)
	return nil
}

// resolveBusyPath applies the flag override, then the configured path,
// then the default location.
func resolveBusyPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cfg, err := store.LoadAppConfig(store.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.BusyFile != "" {
		return cfg.BusyFile, nil
	}
	return store.DefaultBusyPath()
}
