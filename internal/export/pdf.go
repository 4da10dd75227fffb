// Package export renders the placed-postcard set to shareable file
// formats: a door layout diagram, QR-coded labels, and a spreadsheet
// report.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/DoorCard/internal/model"
)

// cardColor represents an RGB color for a placed card.
type cardColor struct {
	R, G, B int
}

var cardColors = []cardColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm; the door is tall).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates a one-page PDF showing every placed postcard on
// the door, to scale, with a small stats header.
func ExportPDF(path string, placements []model.Placement) error {
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	door := model.Door

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Door %d x %d mm", door.Width, door.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Postcards: %d | Used area: %d mm\xb2 | Coverage: %.1f%%",
		len(placements), usedArea(placements), coverage(placements, door))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the door into the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/float64(door.Width), drawHeight/float64(door.Height))

	canvasW := float64(door.Width) * scale
	canvasH := float64(door.Height) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Door background
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed cards. The door's z axis points up, the page's y axis
	// points down, so z is flipped.
	for i, p := range placements {
		col := cardColors[i%len(cardColors)]
		pw := float64(p.Rect.Width) * scale
		ph := float64(p.Rect.Height) * scale
		px := offsetX + float64(p.Rect.X)*scale
		py := offsetY + canvasH - float64(p.Rect.MaxZ())*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(px, py+ph/2-1.5)
		caption := fmt.Sprintf("%s (%d,%d)", p.ID, p.Rect.X, p.Rect.Z)
		pdf.CellFormat(pw, 3, caption, "", 0, "C", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return pdf.OutputFileAndClose(path)
}

// usedArea returns the total area covered by placed cards in mm².
func usedArea(placements []model.Placement) int {
	total := 0
	for _, p := range placements {
		total += p.Rect.Width * p.Rect.Height
	}
	return total
}

// coverage returns the used percentage of the door surface.
func coverage(placements []model.Placement, door model.Rectangle) float64 {
	doorArea := door.Width * door.Height
	if doorArea == 0 {
		return 0
	}
	return float64(usedArea(placements)) / float64(doorArea) * 100.0
}
