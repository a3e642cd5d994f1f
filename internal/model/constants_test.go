package model

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultPrintConstants(t *testing.T) {
	c := DefaultPrintConstants()

	if c.MaxWidthCast != 53.5 {
		t.Errorf("expected MaxWidthCast=53.5, got %v", c.MaxWidthCast)
	}
	if c.MaxWidthCut != 51.5 {
		t.Errorf("expected MaxWidthCut=51.5, got %v", c.MaxWidthCut)
	}
	if c.SeamOverlap != 0.5 {
		t.Errorf("expected SeamOverlap=0.5, got %v", c.SeamOverlap)
	}
	if c.Bleed != 0.125 {
		t.Errorf("expected Bleed=0.125, got %v", c.Bleed)
	}
	if c.TargetDPI != 300 || c.MinDPI != 150 {
		t.Errorf("expected DPI thresholds 300/150, got %d/%d", c.TargetDPI, c.MinDPI)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default constants should validate, got %v", err)
	}
}

func TestMaxWidth(t *testing.T) {
	c := DefaultPrintConstants()

	w, err := c.MaxWidth(MaterialCast)
	if err != nil || w != 53.5 {
		t.Errorf("MaxWidth(cast) = %v, %v", w, err)
	}
	w, err = c.MaxWidth(MaterialCut)
	if err != nil || w != 51.5 {
		t.Errorf("MaxWidth(cut) = %v, %v", w, err)
	}
	_, err = c.MaxWidth(MaterialClass("reflective"))
	if !errors.Is(err, ErrUnknownMaterialClass) {
		t.Errorf("expected ErrUnknownMaterialClass, got %v", err)
	}
}

func TestPrintConstantsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PrintConstants)
	}{
		{"zero cast width", func(c *PrintConstants) { c.MaxWidthCast = 0 }},
		{"negative cut width", func(c *PrintConstants) { c.MaxWidthCut = -1 }},
		{"negative bleed", func(c *PrintConstants) { c.Bleed = -0.1 }},
		{"negative overlap", func(c *PrintConstants) { c.SeamOverlap = -0.5 }},
		{"overlap consumes width", func(c *PrintConstants) { c.SeamOverlap = 51.5 }},
		{"min above target", func(c *PrintConstants) { c.MinDPI = 400 }},
		{"zero min dpi", func(c *PrintConstants) { c.MinDPI = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultPrintConstants()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
		})
	}
}

func TestValidatePanel(t *testing.T) {
	valid := PanelDefinition{Label: "Hood", Width: 40, Height: 60, Sqft: 16.7}
	if err := ValidatePanel(valid); err != nil {
		t.Errorf("expected valid panel, got %v", err)
	}

	bad := []PanelDefinition{
		{Label: "zero width", Width: 0, Height: 10},
		{Label: "zero height", Width: 10, Height: 0},
		{Label: "negative width", Width: -5, Height: 10},
		{Label: "negative height", Width: 5, Height: -10},
		{Label: "nan", Width: math.NaN(), Height: 10},
		{Label: "inf", Width: 10, Height: math.Inf(1)},
	}
	for _, p := range bad {
		if err := ValidatePanel(p); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: expected ErrInvalidDimension, got %v", p.Label, err)
		}
	}
}
