package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension reports a zero, negative or non-finite size.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrUnknownMaterialClass reports a material outside {cast, cut}.
	ErrUnknownMaterialClass = errors.New("unknown material class")
)

// PrintConstants holds the roll and resolution limits used by the layout
// engine and print accounting. All lengths are in inches.
type PrintConstants struct {
	MaxWidthCast float64 `json:"max_width_cast"` // Usable print width on cast vinyl
	MaxWidthCut  float64 `json:"max_width_cut"`  // Usable print width on cut vinyl
	SeamOverlap  float64 `json:"seam_overlap"`   // Overlap shared by adjacent strips
	Bleed        float64 `json:"bleed"`          // Margin added to all four edges of a strip
	TargetDPI    int     `json:"target_dpi"`     // Production-ready resolution
	MinDPI       int     `json:"min_dpi"`        // Lowest acceptable resolution
}

func DefaultPrintConstants() PrintConstants {
	return PrintConstants{
		MaxWidthCast: 53.5,
		MaxWidthCut:  51.5,
		SeamOverlap:  0.5,
		Bleed:        0.125,
		TargetDPI:    300,
		MinDPI:       150,
	}
}

// MaxWidth returns the usable print width for the given material.
func (c PrintConstants) MaxWidth(m MaterialClass) (float64, error) {
	switch m {
	case MaterialCast:
		return c.MaxWidthCast, nil
	case MaterialCut:
		return c.MaxWidthCut, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterialClass, string(m))
	}
}

// Validate checks that the constants describe a printable roll.
func (c PrintConstants) Validate() error {
	if !positive(c.MaxWidthCast) || !positive(c.MaxWidthCut) {
		return fmt.Errorf("%w: max print width must be positive", ErrInvalidDimension)
	}
	if c.SeamOverlap < 0 || c.Bleed < 0 || math.IsNaN(c.SeamOverlap) || math.IsNaN(c.Bleed) {
		return fmt.Errorf("%w: seam overlap and bleed must not be negative", ErrInvalidDimension)
	}
	if c.SeamOverlap >= c.MaxWidthCast || c.SeamOverlap >= c.MaxWidthCut {
		return fmt.Errorf("%w: seam overlap %.3f leaves no usable width", ErrInvalidDimension, c.SeamOverlap)
	}
	if c.MinDPI <= 0 || c.TargetDPI < c.MinDPI {
		return fmt.Errorf("%w: dpi thresholds must satisfy 0 < min <= target", ErrInvalidDimension)
	}
	return nil
}

// ValidatePanel rejects panels the layout engine cannot print.
func ValidatePanel(p PanelDefinition) error {
	if !positive(p.Width) {
		return fmt.Errorf("%w: panel %q width %v", ErrInvalidDimension, p.Label, p.Width)
	}
	if !positive(p.Height) {
		return fmt.Errorf("%w: panel %q height %v", ErrInvalidDimension, p.Label, p.Height)
	}
	return nil
}

// positive is false for NaN and infinities as well as for v <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
