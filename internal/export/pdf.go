// Package export writes decomposed print jobs to production sheets,
// strip labels and spreadsheets.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/WrapCut/internal/accounting"
	"github.com/piwi3910/WrapCut/internal/model"
)

// stripColor represents an RGB fill for a print strip.
type stripColor struct {
	R, G, B int
}

var stripColors = []stripColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	drawAreaW    = 140.0
	tableLeft    = marginLeft + drawAreaW + 10.0
)

// ExportPDF writes a production sheet for a decomposed job. Each panel is
// rendered on its own page showing its strips along the roll, with seam
// overlaps hatched and the bleed outline drawn around every strip. A
// summary page with linear feet and cost closes the document.
func ExportPDF(path string, job model.PrintJob, result model.LayoutResult, constants model.PrintConstants) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, pl := range result.Panels {
		pdf.AddPage()
		renderPanelPage(pdf, job, pl, result.Material, constants, i+1, len(result.Panels))
	}

	pdf.AddPage()
	renderSummaryPage(pdf, job, accounting.Summarize(result, job.PricePerLinearFoot))

	if err := ensureDir(path); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// renderPanelPage draws one panel and its strips on the current page.
func renderPanelPage(pdf *fpdf.Fpdf, job model.PrintJob, pl model.PanelLayout, material model.MaterialClass, constants model.PrintConstants, panelNum, panelCount int) {
	panel := pl.Panel

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel %d/%d: %s (%.2f x %.2f in)", panelNum, panelCount, panel.Label, panel.Width, panel.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Job: %s | Material: %s | Strips: %d | Panel: %.2f sq ft | Printed: %.2f sq ft",
		jobTitle(job), material, len(pl.Strips), panel.Sqft, pl.StripSqft())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawHeight := pageHeight - drawAreaTop - marginBottom - 10
	bleed := constants.Bleed

	// Scale the panel plus bleed into the drawing area.
	fullW := panel.Width + 2*bleed
	fullH := panel.Height + 2*bleed
	scale := math.Min(drawAreaW/fullW, drawHeight/fullH)

	offsetX := marginLeft + (drawAreaW-panel.Width*scale)/2
	offsetY := drawAreaTop + bleed*scale

	// Panel outline
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, panel.Width*scale, panel.Height*scale, "FD")

	for i, s := range pl.Strips {
		col := stripColors[i%len(stripColors)]
		sy := offsetY + s.StartY*scale
		sh := s.Length() * scale
		sw := panel.Width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(offsetX, sy, sw, sh, "FD")

		// Bleed outline
		pdf.SetDrawColor(120, 120, 120)
		pdf.SetLineWidth(0.1)
		pdf.SetDashPattern([]float64{1, 1}, 0)
		pdf.Rect(offsetX-bleed*scale, sy-bleed*scale, sw+2*bleed*scale, sh+2*bleed*scale, "D")
		pdf.SetDashPattern([]float64{}, 0)

		if sh > 8 {
			pdf.SetFont("Helvetica", "B", labelFontSize(sw, sh))
			pdf.SetTextColor(0, 0, 0)
			text := fmt.Sprintf("Strip %d/%d", s.StripNumber, s.TotalStrips)
			tw := pdf.GetStringWidth(text)
			if tw < sw-2 {
				pdf.SetXY(offsetX+(sw-tw)/2, sy+sh/2-2)
				pdf.CellFormat(tw, 4, text, "", 0, "C", false, 0, "")
			}
		}
	}

	// Seam overlaps are drawn last so they sit on top of both strips.
	for i := 1; i < len(pl.Strips); i++ {
		top := pl.Strips[i].StartY
		bottom := pl.Strips[i-1].EndY
		if bottom <= top {
			continue
		}
		oy := offsetY + top*scale
		oh := (bottom - top) * scale
		pdf.SetFillColor(255, 200, 200)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(offsetX, oy, panel.Width*scale, oh, "FD")
		drawHatchPattern(pdf, offsetX, oy, panel.Width*scale, oh)
	}

	pdf.SetTextColor(0, 0, 0)
	drawDimensionAnnotations(pdf, panel, offsetX, offsetY, panel.Width*scale, panel.Height*scale)
	drawStripTable(pdf, pl.Strips, drawAreaTop)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark a seam
// overlap.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 2.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations labels the panel width below the drawing and
// the height alongside it.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, panel model.PanelDefinition, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.2f in", panel.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.2f in", panel.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-4, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-4-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawStripTable lists the strips of a panel to the right of the drawing.
func drawStripTable(pdf *fpdf.Fpdf, strips []model.PrintStrip, y float64) {
	colWidths := []float64{12, 22, 22, 26, 26, 14}
	headers := []string{"#", "Start", "End", "Print W", "Print H", "Sq ft"}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	x := tableLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 8)
	for i, s := range strips {
		row := []string{
			fmt.Sprintf("%d", s.StripNumber),
			fmt.Sprintf("%.2f", s.StartY),
			fmt.Sprintf("%.2f", s.EndY),
			fmt.Sprintf("%.2f in", s.PrintWidth),
			fmt.Sprintf("%.2f in", s.PrintHeight),
			fmt.Sprintf("%.2f", s.Sqft),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x = tableLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			x += colWidths[j]
		}
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(100, 100, 100)
	for _, s := range strips {
		pdf.SetXY(tableLeft, y)
		pdf.CellFormat(120, 4, s.Filename, "", 0, "L", false, 0, "")
		y += 4
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the job totals and per-panel breakdown.
func renderSummaryPage(pdf *fpdf.Fpdf, job model.PrintJob, summary accounting.JobSummary) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Print Summary: "+jobTitle(job), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Customer", job.Customer},
		{"Vehicle", job.Vehicle},
		{"Material", summary.Material.String()},
		{"Total Strips", fmt.Sprintf("%d", summary.TotalStrips)},
		{"Panel Area", fmt.Sprintf("%.2f sq ft", summary.TotalPanelSqft)},
		{"Printed Area", fmt.Sprintf("%.2f sq ft", summary.TotalStripSqft)},
		{"Seam Overlap", fmt.Sprintf("%.2f sq ft", summary.OverlapSqft())},
		{"Linear Feet", fmt.Sprintf("%.2f ft", summary.TotalLinearFeet)},
		{"Price / Linear Foot", fmt.Sprintf("$%.2f", summary.PricePerLinearFoot)},
		{"Material Cost", fmt.Sprintf("$%.2f", summary.TotalCost)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		if item.value == "" {
			continue
		}
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Panel Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{70, 25, 35, 35, 35, 35}
	headers := []string{"Panel", "Strips", "Panel sq ft", "Printed sq ft", "Linear ft", "Cost"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, ps := range summary.Panels {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		rowData := []string{
			ps.Label,
			fmt.Sprintf("%d", ps.Strips),
			fmt.Sprintf("%.2f", ps.PanelSqft),
			fmt.Sprintf("%.2f", ps.StripSqft),
			fmt.Sprintf("%.2f", ps.LinearFeet),
			fmt.Sprintf("$%.2f", ps.Cost),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WrapCut - Vinyl Wrap Print Layout", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 9
	case minDim > 20:
		return 8
	default:
		return 6
	}
}

func jobTitle(job model.PrintJob) string {
	if job.Name == "" {
		return "Untitled"
	}
	return job.Name
}
