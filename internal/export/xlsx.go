package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DoorCard/internal/model"
)

// ExportXLSX writes the placement list to an Excel workbook with one
// row per postcard plus a door coverage summary.
func ExportXLSX(path string, placements []model.Placement) error {
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"ID", "X (mm)", "Z (mm)", "Width (mm)", "Height (mm)", "Orientation"},
	}
	for _, p := range placements {
		rows = append(rows, []interface{}{
			p.ID, p.Rect.X, p.Rect.Z, p.Rect.Width, p.Rect.Height, p.Orientation.String(),
		})
	}

	door := model.Door
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Postcards", len(placements)},
		[]interface{}{"Used area (mm²)", usedArea(placements)},
		[]interface{}{"Door area (mm²)", door.Width * door.Height},
		[]interface{}{"Coverage (%)", coverage(placements, door)},
	)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to create cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
