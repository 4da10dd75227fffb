package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DoorCard/internal/model"
)

func buildTestPlacements() []model.Placement {
	return []model.Placement{
		{ID: "a1b2c3d4", Rect: model.Rectangle{X: 10, Z: 20, Width: 146, Height: 106}, Orientation: model.OrientationLandscape},
		{ID: "e5f6a7b8", Rect: model.Rectangle{X: 300, Z: 500, Width: 106, Height: 146}, Orientation: model.OrientationPortrait},
		{ID: "c9d0e1f2", Rect: model.Rectangle{X: 600, Z: 1800, Width: 146, Height: 146}, Orientation: model.OrientationUndefined},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "door.pdf")

	err := ExportPDF(path, buildTestPlacements())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, nil)
	if err == nil {
		t.Fatal("expected error for empty placement list, got nil")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestPlacements())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportLabels_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, nil)
	if err == nil {
		t.Fatal("expected error for empty placement list, got nil")
	}
}

func TestExportLabels_ManyCards(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 cards force a second label page
	placements := make([]model.Placement, 35)
	for i := range placements {
		placements[i] = model.Placement{
			ID:          fmt.Sprintf("card%04d", i),
			Rect:        model.Rectangle{X: i * 10, Z: i * 50, Width: 146, Height: 106},
			Orientation: model.OrientationLandscape,
		}
	}

	err := ExportLabels(path, placements)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestPlacements())

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}
	if labels[0].ID != "a1b2c3d4" {
		t.Errorf("expected first label ID 'a1b2c3d4', got %q", labels[0].ID)
	}
	if labels[0].Width != 146 || labels[0].Height != 106 {
		t.Errorf("wrong dimensions: got %dx%d, want 146x106", labels[0].Width, labels[0].Height)
	}
	if labels[1].Orientation != "PORTRAIT" {
		t.Errorf("expected second label orientation PORTRAIT, got %q", labels[1].Orientation)
	}
	if labels[2].X != 600 || labels[2].Z != 1800 {
		t.Errorf("wrong position: got (%d, %d), want (600, 1800)", labels[2].X, labels[2].Z)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		ID:          "a1b2c3d4",
		Orientation: "LANDSCAPE",
		X:           50,
		Z:           100,
		Width:       146,
		Height:      106,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.ID != info.ID {
		t.Errorf("ID mismatch: got %q, want %q", decoded.ID, info.ID)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %dx%d, want %dx%d",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
}

func TestExportXLSX_CreatesReadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placements.xlsx")

	placements := buildTestPlacements()
	err := ExportXLSX(path, placements)
	if err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook was not created: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("cannot read workbook: %v", err)
	}

	if len(rows) < len(placements)+1 {
		t.Fatalf("expected at least %d rows, got %d", len(placements)+1, len(rows))
	}
	if rows[0][0] != "ID" {
		t.Errorf("expected header row to start with ID, got %q", rows[0][0])
	}
	if rows[1][0] != "a1b2c3d4" {
		t.Errorf("expected first data row ID 'a1b2c3d4', got %q", rows[1][0])
	}
	if rows[1][5] != "LANDSCAPE" {
		t.Errorf("expected first data row orientation LANDSCAPE, got %q", rows[1][5])
	}
}

func TestExportXLSX_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	err := ExportXLSX(path, nil)
	if err == nil {
		t.Fatal("expected error for empty placement list, got nil")
	}
}

func TestUsedAreaAndCoverage(t *testing.T) {
	placements := []model.Placement{
		{Rect: model.Rectangle{X: 0, Z: 0, Width: 100, Height: 200}},
		{Rect: model.Rectangle{X: 200, Z: 0, Width: 50, Height: 40}},
	}

	if got := usedArea(placements); got != 22000 {
		t.Errorf("usedArea: got %d, want 22000", got)
	}

	cov := coverage(placements, model.Rectangle{Width: 800, Height: 2000})
	want := 22000.0 / 1600000.0 * 100.0
	if diff := cov - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("coverage: got %v, want %v", cov, want)
	}
}
