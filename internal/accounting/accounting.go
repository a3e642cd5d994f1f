// Package accounting derives roll consumption, material cost and print
// resolution quality from decomposed print strips.
package accounting

import (
	"fmt"
	"math"

	"github.com/piwi3910/WrapCut/internal/model"
)

// DPIStatus is the quality tier of a print resolution.
type DPIStatus string

const (
	DPIGood       DPIStatus = "good"
	DPIAcceptable DPIStatus = "acceptable"
	DPILow        DPIStatus = "low"
)

// Labels shown next to each tier. QC gating and UI warnings match on
// these strings, so they must not change.
const (
	LabelGood       = "Production Ready"
	LabelAcceptable = "Acceptable — minor quality loss"
	LabelLow        = "Too low — increase canvas resolution"
)

// DPIResult is the outcome of a resolution check.
type DPIResult struct {
	DPI    int       `json:"dpi"`
	Status DPIStatus `json:"status"`
	Label  string    `json:"label"`
}

// Calculator classifies print resolution against a set of print constants.
type Calculator struct {
	Constants model.PrintConstants
}

func New(constants model.PrintConstants) *Calculator {
	return &Calculator{Constants: constants}
}

// ComputeLinearFeet returns the roll length consumed by the strips.
// PrintWidth is the axis that advances along the roll, so it is the one
// summed. Pass every strip of every panel to get a job total.
func ComputeLinearFeet(strips []model.PrintStrip) float64 {
	var inches float64
	for _, s := range strips {
		inches += s.PrintWidth
	}
	return inches / 12.0
}

// ComputeMaterialCost prices a roll length.
func ComputeMaterialCost(linearFeet, pricePerLinearFoot float64) float64 {
	return linearFeet * pricePerLinearFoot
}

// ClassifyDPI classifies a resolution using the default print constants.
func ClassifyDPI(sourcePixels, printInches float64) (DPIResult, error) {
	return New(model.DefaultPrintConstants()).ClassifyDPI(sourcePixels, printInches)
}

// ClassifyDPI computes round(sourcePixels / printInches) and sorts it into
// a quality tier.
func (c *Calculator) ClassifyDPI(sourcePixels, printInches float64) (DPIResult, error) {
	if !(printInches > 0) || math.IsInf(printInches, 1) {
		return DPIResult{}, fmt.Errorf("%w: print size %v in", model.ErrInvalidDimension, printInches)
	}
	if sourcePixels < 0 || math.IsNaN(sourcePixels) || math.IsInf(sourcePixels, 1) {
		return DPIResult{}, fmt.Errorf("%w: source size %v px", model.ErrInvalidDimension, sourcePixels)
	}

	ratio := math.Round(sourcePixels / printInches)
	if math.IsInf(ratio, 0) || ratio > math.MaxInt32 {
		return DPIResult{}, fmt.Errorf("%w: %v px over %v in is out of range", model.ErrInvalidDimension, sourcePixels, printInches)
	}

	dpi := int(ratio)
	return c.classify(dpi), nil
}

func (c *Calculator) classify(dpi int) DPIResult {
	switch {
	case dpi >= c.Constants.TargetDPI:
		return DPIResult{DPI: dpi, Status: DPIGood, Label: LabelGood}
	case dpi >= c.Constants.MinDPI:
		return DPIResult{DPI: dpi, Status: DPIAcceptable, Label: LabelAcceptable}
	default:
		return DPIResult{DPI: dpi, Status: DPILow, Label: LabelLow}
	}
}

// ArtworkCheck reports the resolution of a source image on both print axes.
type ArtworkCheck struct {
	Horizontal DPIResult `json:"horizontal"`
	Vertical   DPIResult `json:"vertical"`
	Overall    DPIResult `json:"overall"` // The lower of the two axes
}

// CheckArtwork classifies an image of pixelsW x pixelsH printed at
// inchesW x inchesH. A stretched image can be fine on one axis and too
// soft on the other, so Overall carries the worse axis.
func (c *Calculator) CheckArtwork(pixelsW, pixelsH, inchesW, inchesH float64) (ArtworkCheck, error) {
	h, err := c.ClassifyDPI(pixelsW, inchesW)
	if err != nil {
		return ArtworkCheck{}, fmt.Errorf("horizontal: %w", err)
	}
	v, err := c.ClassifyDPI(pixelsH, inchesH)
	if err != nil {
		return ArtworkCheck{}, fmt.Errorf("vertical: %w", err)
	}

	overall := h
	if v.DPI < h.DPI {
		overall = v
	}
	return ArtworkCheck{Horizontal: h, Vertical: v, Overall: overall}, nil
}
