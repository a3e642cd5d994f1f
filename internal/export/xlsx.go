package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/WrapCut/internal/accounting"
	"github.com/piwi3910/WrapCut/internal/model"
)

const (
	stripsSheet  = "Strips"
	summarySheet = "Summary"
)

var stripHeaders = []string{
	"Panel", "Strip", "Total", "Start Y (in)", "End Y (in)",
	"Print Width (in)", "Print Height (in)", "Top Overlap", "Bottom Overlap",
	"Sq Ft", "File",
}

// ExportXLSX writes a cut-list workbook with a "Strips" sheet listing every
// strip and a "Summary" sheet with per-panel and job totals.
func ExportXLSX(path string, job model.PrintJob, result model.LayoutResult) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stripsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeStripsSheet(f, result, bold); err != nil {
		return err
	}
	if err := writeSummarySheet(f, job, accounting.Summarize(result, job.PricePerLinearFoot), bold); err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeStripsSheet(f *excelize.File, result model.LayoutResult, bold int) error {
	if err := writeRow(f, stripsSheet, 1, toAny(stripHeaders)); err != nil {
		return err
	}
	if err := f.SetCellStyle(stripsSheet, "A1", "K1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	row := 2
	for _, s := range result.AllStrips() {
		values := []any{
			s.PanelLabel, s.StripNumber, s.TotalStrips, s.StartY, s.EndY,
			s.PrintWidth, s.PrintHeight, s.HasTopOverlap, s.HasBottomOverlap,
			s.Sqft, s.Filename,
		}
		if err := writeRow(f, stripsSheet, row, values); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(stripsSheet, "A", "A", 24); err != nil {
		return err
	}
	return f.SetColWidth(stripsSheet, "K", "K", 32)
}

func writeSummarySheet(f *excelize.File, job model.PrintJob, summary accounting.JobSummary, bold int) error {
	header := []any{"Panel", "Strips", "Panel Sq Ft", "Printed Sq Ft", "Linear Feet", "Cost"}
	if err := writeRow(f, summarySheet, 1, header); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "F1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	row := 2
	for _, ps := range summary.Panels {
		values := []any{ps.Label, ps.Strips, ps.PanelSqft, ps.StripSqft, ps.LinearFeet, ps.Cost}
		if err := writeRow(f, summarySheet, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][]any{
		{"Job", job.Name},
		{"Material", summary.Material.String()},
		{"Total Strips", summary.TotalStrips},
		{"Total Panel Sq Ft", summary.TotalPanelSqft},
		{"Total Printed Sq Ft", summary.TotalStripSqft},
		{"Seam Overlap Sq Ft", summary.OverlapSqft()},
		{"Total Linear Feet", summary.TotalLinearFeet},
		{"Price / Linear Foot", summary.PricePerLinearFoot},
		{"Material Cost", summary.TotalCost},
	}
	for _, t := range totals {
		if err := writeRow(f, summarySheet, row, t); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStyle(summarySheet, cell, cell, bold); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(summarySheet, "A", "A", 24)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
