package engine

import (
	"context"

	"github.com/piwi3910/WrapCut/internal/accounting"
	"github.com/piwi3910/WrapCut/internal/model"
)

// ComparisonResult holds the layout and computed figures for one material.
type ComparisonResult struct {
	Material           model.MaterialClass
	Result             model.LayoutResult
	Strips             int
	Seams              int
	LinearFeet         float64
	PricePerLinearFoot float64
	Cost               float64
	OverlapSqft        float64
}

// CompareMaterials lays the same panels out on every material class so a
// job can be quoted side by side in cast and cut vinyl. prices maps each
// material to its price per linear foot; a missing price counts as zero.
func CompareMaterials(ctx context.Context, constants model.PrintConstants, panels []model.PanelDefinition, prices map[model.MaterialClass]float64) ([]ComparisonResult, error) {
	d := New(constants)
	results := make([]ComparisonResult, 0, len(model.MaterialClasses))

	for _, material := range model.MaterialClasses {
		result, err := d.DecomposeJob(ctx, panels, material)
		if err != nil {
			return nil, err
		}

		strips := result.AllStrips()
		lf := accounting.ComputeLinearFeet(strips)
		price := prices[material]

		results = append(results, ComparisonResult{
			Material:           material,
			Result:             result,
			Strips:             len(strips),
			Seams:              len(strips) - len(result.Panels),
			LinearFeet:         lf,
			PricePerLinearFoot: price,
			Cost:               accounting.ComputeMaterialCost(lf, price),
			OverlapSqft:        result.OverlapSqft(),
		})
	}

	return results, nil
}

// Cheapest returns the comparison entry with the lowest cost. Ties keep
// the earlier entry. It returns false for an empty slice.
func Cheapest(results []ComparisonResult) (ComparisonResult, bool) {
	if len(results) == 0 {
		return ComparisonResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}
	return best, true
}
