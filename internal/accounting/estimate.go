package accounting

import "math"

// RollEstimate holds the result of a roll pull calculation.
type RollEstimate struct {
	LinearFeet       float64 `json:"linear_feet"`        // Roll length the job consumes
	RollLength       float64 `json:"roll_length"`        // Length of one roll in feet
	RollsNeededExact float64 `json:"rolls_needed_exact"` // Exact fractional number of rolls
	RollsNeededMin   int     `json:"rolls_needed_min"`   // Ceiling of exact
	RollsWithWaste   int     `json:"rolls_with_waste"`   // Recommended rolls including waste factor
	WastePercent     float64 `json:"waste_percent"`      // Waste factor applied (e.g. 10 for 10%)
	FeetWithWaste    float64 `json:"feet_with_waste"`    // Linear feet including waste factor
	PricePerRoll     float64 `json:"price_per_roll"`
	EstimatedCost    float64 `json:"estimated_cost"` // RollsWithWaste x PricePerRoll
}

// EstimateRolls computes how many rolls to pull from stock for a job.
// The waste percentage covers test prints, misprints and trim loss.
func EstimateRolls(linearFeet, rollLength, wastePercent, pricePerRoll float64) RollEstimate {
	wasteFactor := 1.0 + (wastePercent / 100.0)
	est := RollEstimate{
		LinearFeet:    linearFeet,
		RollLength:    rollLength,
		WastePercent:  wastePercent,
		FeetWithWaste: linearFeet * wasteFactor,
		PricePerRoll:  pricePerRoll,
	}
	if rollLength <= 0 {
		return est
	}

	est.RollsNeededExact = linearFeet / rollLength
	est.RollsNeededMin = int(math.Ceil(est.RollsNeededExact))

	est.RollsWithWaste = int(math.Ceil(est.RollsNeededExact * wasteFactor))
	if est.RollsWithWaste < est.RollsNeededMin {
		est.RollsWithWaste = est.RollsNeededMin
	}

	est.EstimatedCost = float64(est.RollsWithWaste) * pricePerRoll
	return est
}
