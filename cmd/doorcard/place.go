package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/piwi3910/DoorCard/internal/engine"
	"github.com/piwi3910/DoorCard/internal/importer"
	"github.com/piwi3910/DoorCard/internal/model"
	"github.com/piwi3910/DoorCard/internal/render"
	"github.com/piwi3910/DoorCard/internal/store"
)

// runPlace implements the place subcommand. It picks a random free
// spot for a new postcard, persists it, and prints the position in a
// randomly chosen coordinate system and units.
func runPlace(args []string) error {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	var (
		portrait    bool
		landscape   bool
		dryrun      bool
		verbosity   int
		busyPath    string
		obstaclesIn string
	)
	fs.BoolVar(&portrait, "p", false, "place the postcard in portrait orientation")
	fs.BoolVar(&portrait, "portrait", false, "place the postcard in portrait orientation")
	fs.BoolVar(&landscape, "l", false, "place the postcard in landscape orientation")
	fs.BoolVar(&landscape, "landscape", false, "place the postcard in landscape orientation")
	fs.BoolVar(&dryrun, "d", false, "pick a spot but do not save it")
	fs.BoolVar(&dryrun, "dryrun", false, "pick a spot but do not save it")
	fs.IntVar(&verbosity, "v", -1, "log verbosity (0=errors, 1=warnings, 2=info, 3=debug)")
	fs.StringVar(&busyPath, "busy", "", "path to the busy file (default ~/.doorcard/busy.csv)")
	fs.StringVar(&obstaclesIn, "obstacles", "", "DXF file with door hardware to avoid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := store.LoadAppConfig(store.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The flag overrides the configured default verbosity.
	if verbosity < 0 {
		verbosity = cfg.DefaultVerbosity
	}
	setupLogging(verbosity)

	// Portrait wins when both flags are given.
	var orientation model.Orientation
	switch {
	case portrait:
		orientation = model.OrientationPortrait
	case landscape:
		orientation = model.OrientationLandscape
	default:
		return fmt.Errorf("an orientation is required: pass -p (portrait) or -l (landscape)")
	}

	if busyPath == "" {
		busyPath = cfg.BusyFile
	}
	if busyPath == "" {
		busyPath, err = store.DefaultBusyPath()
		if err != nil {
			return err
		}
	}

	placements, err := store.Load(busyPath)
	if err != nil {
		return fmt.Errorf("failed to load busy file: %w", err)
	}
	slog.Info("loaded busy file", "path", busyPath, "cards", len(placements))

	occupied := make([]model.Rectangle, 0, len(placements))
	for _, p := range placements {
		occupied = append(occupied, p.Rect)
	}

	if obstaclesIn != "" {
		result := importer.ImportDXF(obstaclesIn)
		for _, w := range result.Warnings {
			slog.Warn("obstacle import", "warning", w)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("failed to import obstacles: %s", result.Errors[0])
		}
		slog.Info("imported obstacles", "path", obstaclesIn, "count", len(result.Obstacles))
		occupied = append(occupied, result.Obstacles...)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampler := engine.New(model.Door, cfg.MaxAttempts, rng)

	rect, err := sampler.Place(orientation, occupied)
	if err != nil {
		return err
	}

	placement := model.NewPlacement(rect, orientation)

	if dryrun {
		slog.Info("dry run, not saving", "placement", rect.String())
	} else {
		placements = append(placements, placement)
		if err := store.Save(busyPath, placements); err != nil {
			return fmt.Errorf("failed to save busy file: %w", err)
		}
		slog.Info("saved busy file", "path", busyPath, "cards", len(placements))
	}

	coords, err := render.New(rng).Render(rect)
	if err != nil {
		return err
	}
	fmt.Printf("coordinates: %s\n", coords)
	return nil
}

// setupLogging routes slog output to stderr at a level matching the
// requested verbosity. Values outside 0..3 are clamped.
func setupLogging(verbosity int) {
	levels := []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		verbosity = len(levels) - 1
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levels[verbosity]})
	slog.SetDefault(slog.New(handler))
}
