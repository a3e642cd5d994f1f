package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaterialClass identifies the vinyl film a job is printed on.
type MaterialClass string

const (
	MaterialCast MaterialClass = "cast" // Cast vinyl, wider usable roll width
	MaterialCut  MaterialClass = "cut"  // Cut / calendared vinyl
)

// MaterialClasses lists every supported material in display order.
var MaterialClasses = []MaterialClass{MaterialCast, MaterialCut}

func (m MaterialClass) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported material classes.
func (m MaterialClass) Valid() bool {
	return m == MaterialCast || m == MaterialCut
}

// ParseMaterialClass converts user input into a MaterialClass.
func ParseMaterialClass(s string) (MaterialClass, error) {
	m := MaterialClass(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterialClass, s)
	}
	return m, nil
}

// PanelDefinition is a named rectangular surface to be wrapped.
type PanelDefinition struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label" yaml:"label"`
	Width  float64 `json:"width" yaml:"width"`   // inches, cross-web
	Height float64 `json:"height" yaml:"height"` // inches, split into strips when too long
	Sqft   float64 `json:"sqft" yaml:"sqft"`     // authoritative panel area
}

func NewPanel(label string, w, h, sqft float64) PanelDefinition {
	return PanelDefinition{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
		Sqft:   sqft,
	}
}

// RawSqft returns width x height in square feet, ignoring any designer
// waste factor baked into Sqft.
func (p PanelDefinition) RawSqft() float64 {
	return p.Width * p.Height / 144.0
}

// PrintStrip is one physical print cut from a panel.
type PrintStrip struct {
	PanelID          string  `json:"panelId" yaml:"panelId"`
	PanelLabel       string  `json:"panelLabel" yaml:"panelLabel"`
	StripNumber      int     `json:"stripNumber" yaml:"stripNumber"`
	TotalStrips      int     `json:"totalStrips" yaml:"totalStrips"`
	StartY           float64 `json:"startY" yaml:"startY"`
	EndY             float64 `json:"endY" yaml:"endY"`
	PrintWidth       float64 `json:"printWidth" yaml:"printWidth"`
	PrintHeight      float64 `json:"printHeight" yaml:"printHeight"`
	HasTopOverlap    bool    `json:"hasTopOverlap" yaml:"hasTopOverlap"`
	HasBottomOverlap bool    `json:"hasBottomOverlap" yaml:"hasBottomOverlap"`
	Sqft             float64 `json:"sqft" yaml:"sqft"`
	Filename         string  `json:"filename" yaml:"filename"`
}

// Length returns the span of panel height the strip covers, overlap included.
func (s PrintStrip) Length() float64 {
	return s.EndY - s.StartY
}

// PanelLayout pairs a panel with the strips it was decomposed into.
type PanelLayout struct {
	Panel  PanelDefinition `json:"panel" yaml:"panel"`
	Strips []PrintStrip    `json:"strips" yaml:"strips"`
}

// StripSqft sums the material area of the panel's strips.
func (pl PanelLayout) StripSqft() float64 {
	var total float64
	for _, s := range pl.Strips {
		total += s.Sqft
	}
	return total
}

// LayoutResult holds the decomposition of every panel in a job.
type LayoutResult struct {
	Material MaterialClass `json:"material" yaml:"material"`
	Panels   []PanelLayout `json:"panels" yaml:"panels"`
}

// AllStrips flattens the strips of every panel in panel order.
func (lr LayoutResult) AllStrips() []PrintStrip {
	var strips []PrintStrip
	for _, pl := range lr.Panels {
		strips = append(strips, pl.Strips...)
	}
	return strips
}

// TotalStrips returns the number of physical prints in the job.
func (lr LayoutResult) TotalStrips() int {
	n := 0
	for _, pl := range lr.Panels {
		n += len(pl.Strips)
	}
	return n
}

// PanelSqft sums the authoritative area of every panel.
func (lr LayoutResult) PanelSqft() float64 {
	var total float64
	for _, pl := range lr.Panels {
		total += pl.Panel.Sqft
	}
	return total
}

// StripSqft sums the material area of every strip, seam overlap included.
func (lr LayoutResult) StripSqft() float64 {
	var total float64
	for _, pl := range lr.Panels {
		total += pl.StripSqft()
	}
	return total
}

// OverlapSqft is the extra material the strips consume over the panels'
// own area.
func (lr LayoutResult) OverlapSqft() float64 {
	return lr.StripSqft() - lr.PanelSqft()
}

// PrintJob ties a set of panels to the material and price they are
// produced with. It is the unit saved to and loaded from job files.
type PrintJob struct {
	ID                 string            `json:"id" yaml:"id"`
	Name               string            `json:"name" yaml:"name"`
	Customer           string            `json:"customer,omitempty" yaml:"customer,omitempty"`
	Vehicle            string            `json:"vehicle,omitempty" yaml:"vehicle,omitempty"`
	Material           MaterialClass     `json:"material" yaml:"material"`
	PricePerLinearFoot float64           `json:"price_per_linear_foot" yaml:"price_per_linear_foot"`
	Panels             []PanelDefinition `json:"panels" yaml:"panels"`
	Result             *LayoutResult     `json:"result,omitempty" yaml:"result,omitempty"`
}

func NewPrintJob(name string) PrintJob {
	return PrintJob{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Material: MaterialCast,
		Panels:   []PanelDefinition{},
	}
}
