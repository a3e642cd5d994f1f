package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/WrapCut/internal/model"
)

// LabelInfo holds the data encoded into each strip label's QR code.
type LabelInfo struct {
	JobName     string              `json:"job,omitempty"`
	PanelLabel  string              `json:"panel"`
	StripNumber int                 `json:"strip"`
	TotalStrips int                 `json:"total"`
	Material    model.MaterialClass `json:"material"`
	PrintWidth  float64             `json:"print_width_in"`
	PrintHeight float64             `json:"print_height_in"`
	StartY      float64             `json:"start_y_in"`
	EndY        float64             `json:"end_y_in"`
	Filename    string              `json:"file"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF with one QR-coded label per print strip so
// printed strips can be matched to their panel and position at install
// time. Labels are laid out on an Avery 5160 sheet (3 columns x 10 rows
// on US Letter).
func ExportLabels(path string, job model.PrintJob, result model.LayoutResult) error {
	labels := CollectLabelInfos(job, result)
	if len(labels) == 0 {
		return fmt.Errorf("no strips to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Filename, err)
		}
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, index int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, info.PanelLabel, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Strip %d of %d", info.StripNumber, info.TotalStrips), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+9)
	dims := fmt.Sprintf("%.2f x %.2f in %s", info.PrintWidth, info.PrintHeight, info.Material)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Y %.2f - %.2f in", info.StartY, info.EndY), "", 1, "L", false, 0, "")

	if info.JobName != "" {
		pdf.SetXY(textX, y+labelPadding+16)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(textW, 3, truncate(pdf, info.JobName, textW), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// truncate shortens s with an ellipsis until it fits in width w at the
// current font.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// CollectLabelInfos returns one label per strip in print order.
func CollectLabelInfos(job model.PrintJob, result model.LayoutResult) []LabelInfo {
	var labels []LabelInfo
	for _, pl := range result.Panels {
		for _, s := range pl.Strips {
			labels = append(labels, LabelInfo{
				JobName:     job.Name,
				PanelLabel:  s.PanelLabel,
				StripNumber: s.StripNumber,
				TotalStrips: s.TotalStrips,
				Material:    result.Material,
				PrintWidth:  s.PrintWidth,
				PrintHeight: s.PrintHeight,
				StartY:      s.StartY,
				EndY:        s.EndY,
				Filename:    s.Filename,
			})
		}
	}
	return labels
}
