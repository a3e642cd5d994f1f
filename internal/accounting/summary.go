package accounting

import "github.com/piwi3910/WrapCut/internal/model"

// PanelSummary holds the material figures for one panel.
type PanelSummary struct {
	PanelID    string  `json:"panel_id"`
	Label      string  `json:"label"`
	Strips     int     `json:"strips"`
	PanelSqft  float64 `json:"panel_sqft"`
	StripSqft  float64 `json:"strip_sqft"` // Includes seam overlap
	LinearFeet float64 `json:"linear_feet"`
	Cost       float64 `json:"cost"`
}

// JobSummary holds per-panel and total material figures for a job.
type JobSummary struct {
	Material           model.MaterialClass `json:"material"`
	PricePerLinearFoot float64             `json:"price_per_linear_foot"`
	Panels             []PanelSummary      `json:"panels"`
	TotalStrips        int                 `json:"total_strips"`
	TotalPanelSqft     float64             `json:"total_panel_sqft"`
	TotalStripSqft     float64             `json:"total_strip_sqft"`
	TotalLinearFeet    float64             `json:"total_linear_feet"`
	TotalCost          float64             `json:"total_cost"`
}

// OverlapSqft is the extra material consumed by seams.
func (s JobSummary) OverlapSqft() float64 {
	return s.TotalStripSqft - s.TotalPanelSqft
}

// Summarize prices a decomposed job. The job's linear footage is computed
// over all strips of all panels at once rather than by adding up rounded
// panel figures.
func Summarize(result model.LayoutResult, pricePerLinearFoot float64) JobSummary {
	summary := JobSummary{
		Material:           result.Material,
		PricePerLinearFoot: pricePerLinearFoot,
		Panels:             make([]PanelSummary, 0, len(result.Panels)),
	}

	for _, pl := range result.Panels {
		lf := ComputeLinearFeet(pl.Strips)
		summary.Panels = append(summary.Panels, PanelSummary{
			PanelID:    pl.Panel.ID,
			Label:      pl.Panel.Label,
			Strips:     len(pl.Strips),
			PanelSqft:  pl.Panel.Sqft,
			StripSqft:  pl.StripSqft(),
			LinearFeet: lf,
			Cost:       ComputeMaterialCost(lf, pricePerLinearFoot),
		})
	}

	all := result.AllStrips()
	summary.TotalStrips = len(all)
	summary.TotalPanelSqft = result.PanelSqft()
	summary.TotalStripSqft = result.StripSqft()
	summary.TotalLinearFeet = ComputeLinearFeet(all)
	summary.TotalCost = ComputeMaterialCost(summary.TotalLinearFeet, pricePerLinearFoot)
	return summary
}
