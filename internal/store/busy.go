// Package store persists DoorCard state: the busy file listing placed
// postcards and the JSON application config.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/DoorCard/internal/model"
)

// busyHeader is written as the first line of every saved busy file.
const busyHeader = "# x,z,orientation"

// ParseError describes a busy file line that could not be parsed.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: bad record %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DefaultBusyPath returns the default busy file location,
// ~/.doorcard/busy.csv.
func DefaultBusyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".doorcard", "busy.csv"), nil
}

// FormatRecord serializes a placement as one busy file line.
func FormatRecord(p model.Placement) string {
	return fmt.Sprintf("%d,%d,%s", p.Rect.X, p.Rect.Z, p.Orientation)
}

// parseRecord parses one busy file line into a placement.
func parseRecord(line string) (model.Placement, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return model.Placement{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Placement{}, fmt.Errorf("bad x coordinate %q", fields[0])
	}
	z, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Placement{}, fmt.Errorf("bad z coordinate %q", fields[1])
	}
	orientation, err := model.ParseOrientation(fields[2])
	if err != nil {
		return model.Placement{}, err
	}

	return model.PlacementAt(x, z, orientation), nil
}

// Load reads the busy file and returns the placements in file order.
// A missing file is an empty set. Comment lines starting with '#' and
// blank lines are skipped; anything else must parse or Load fails with
// a ParseError naming the offending line.
func Load(path string) ([]model.Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read busy file: %w", err)
	}

	var placements []model.Placement
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		p, err := parseRecord(trimmed)
		if err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Text: trimmed, Err: err}
		}
		placements = append(placements, p)
	}

	return placements, nil
}

// Save writes the full placement set to the busy file, creating parent
// directories as needed. The previous file content, if any, is kept as
// <path>.bak so a bad write never loses the whole history.
func Save(path string, placements []model.Placement) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create busy file directory: %w", err)
	}

	if err := backupExisting(path); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(busyHeader)
	sb.WriteByte('\n')
	for _, p := range placements {
		sb.WriteString(FormatRecord(p))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write busy file: %w", err)
	}
	return nil
}

// backupExisting copies the current busy file to <path>.bak. A missing
// source file is not an error.
func backupExisting(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read busy file for backup: %w", err)
	}
	if err := os.WriteFile(path+".bak", data, 0644); err != nil {
		return fmt.Errorf("failed to write busy file backup: %w", err)
	}
	return nil
}
