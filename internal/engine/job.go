package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/WrapCut/internal/model"
)

// DecomposeJob decomposes every panel of a job on the given material.
// Panels are processed concurrently; the result keeps the input order.
// The first invalid panel cancels the remaining work and its error is
// returned.
func (d *Decomposer) DecomposeJob(ctx context.Context, panels []model.PanelDefinition, material model.MaterialClass) (model.LayoutResult, error) {
	if _, err := d.Constants.MaxWidth(material); err != nil {
		return model.LayoutResult{}, err
	}
	if err := checkPanelIDs(panels); err != nil {
		return model.LayoutResult{}, err
	}

	layouts := make([]model.PanelLayout, len(panels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, panel := range panels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			strips, err := d.DecomposePanel(panel, material)
			if err != nil {
				return fmt.Errorf("panel %d (%s): %w", i+1, panel.Label, err)
			}
			layouts[i] = model.PanelLayout{Panel: panel, Strips: strips}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.LayoutResult{}, err
	}

	return model.LayoutResult{Material: material, Panels: layouts}, nil
}

// LayoutJob decomposes a job's panels on the job's own material.
func (d *Decomposer) LayoutJob(ctx context.Context, job model.PrintJob) (model.LayoutResult, error) {
	return d.DecomposeJob(ctx, job.Panels, job.Material)
}

// checkPanelIDs rejects jobs where two panels share an ID, since strips
// refer back to their panel by ID. Panels without an ID are allowed.
func checkPanelIDs(panels []model.PanelDefinition) error {
	seen := make(map[string]string, len(panels))
	for _, p := range panels {
		if p.ID == "" {
			continue
		}
		if other, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate panel id %q (%s, %s)", p.ID, other, p.Label)
		}
		seen[p.ID] = p.Label
	}
	return nil
}
