package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/piwi3910/WrapCut/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func vanPanels() []model.PanelDefinition {
	return []model.PanelDefinition{
		model.NewPanel("Driver Side", 60, 144, 60),
		model.NewPanel("Passenger Side", 60, 144, 60),
		model.NewPanel("Hood", 40, 52, 14.5),
		model.NewPanel("Rear Doors", 58, 50, 20.1),
		model.NewPanel("Roof", 70, 200, 97.2),
	}
}

func TestDecomposeJob_KeepsPanelOrder(t *testing.T) {
	panels := vanPanels()
	result, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), panels, model.MaterialCast)
	require.NoError(t, err)

	assert.Equal(t, model.MaterialCast, result.Material)
	require.Len(t, result.Panels, len(panels))
	for i, pl := range result.Panels {
		assert.Equal(t, panels[i].ID, pl.Panel.ID)
		for _, s := range pl.Strips {
			assert.Equal(t, panels[i].ID, s.PanelID)
		}
	}
	assert.Len(t, result.Panels[0].Strips, 3)
	assert.Len(t, result.Panels[2].Strips, 1)
}

func TestDecomposeJob_MatchesPanelByPanel(t *testing.T) {
	d := New(model.DefaultPrintConstants())
	panels := vanPanels()

	result, err := d.DecomposeJob(context.Background(), panels, model.MaterialCut)
	require.NoError(t, err)

	for i, p := range panels {
		want, err := d.DecomposePanel(p, model.MaterialCut)
		require.NoError(t, err)
		assert.Equal(t, want, result.Panels[i].Strips)
	}
}

func TestDecomposeJob_ManyPanels(t *testing.T) {
	var panels []model.PanelDefinition
	for i := 0; i < 200; i++ {
		panels = append(panels, model.PanelDefinition{
			ID:     fmt.Sprintf("p%03d", i),
			Label:  fmt.Sprintf("Panel %d", i),
			Width:  30,
			Height: float64(10 + i),
			Sqft:   1,
		})
	}

	result, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), panels, model.MaterialCast)
	require.NoError(t, err)
	require.Len(t, result.Panels, 200)
	for i, pl := range result.Panels {
		assert.Equal(t, fmt.Sprintf("p%03d", i), pl.Panel.ID)
		assert.NotEmpty(t, pl.Strips)
	}
}

func TestDecomposeJob_InvalidPanelFailsJob(t *testing.T) {
	panels := vanPanels()
	panels[3].Height = 0

	result, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), panels, model.MaterialCast)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "Rear Doors")
	assert.Empty(t, result.Panels)
}

func TestDecomposeJob_UnknownMaterial(t *testing.T) {
	_, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), vanPanels(), "vinyl")
	assert.ErrorIs(t, err, model.ErrUnknownMaterialClass)
}

func TestDecomposeJob_DuplicatePanelIDs(t *testing.T) {
	panels := vanPanels()
	panels[1].ID = panels[0].ID

	_, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), panels, model.MaterialCast)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate panel id")
}

func TestDecomposeJob_EmptyIDsAllowed(t *testing.T) {
	panels := []model.PanelDefinition{
		{Label: "A", Width: 10, Height: 10, Sqft: 0.7},
		{Label: "B", Width: 10, Height: 10, Sqft: 0.7},
	}
	result, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), panels, model.MaterialCast)
	require.NoError(t, err)
	assert.Len(t, result.Panels, 2)
}

func TestDecomposeJob_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(model.DefaultPrintConstants()).DecomposeJob(ctx, vanPanels(), model.MaterialCast)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecomposeJob_NoPanels(t *testing.T) {
	result, err := New(model.DefaultPrintConstants()).DecomposeJob(context.Background(), nil, model.MaterialCast)
	require.NoError(t, err)
	assert.Empty(t, result.Panels)
	assert.Equal(t, 0, result.TotalStrips())
}

func TestLayoutJob_UsesJobMaterial(t *testing.T) {
	job := model.NewPrintJob("Van")
	job.Material = model.MaterialCut
	job.Panels = vanPanels()

	result, err := New(model.DefaultPrintConstants()).LayoutJob(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, model.MaterialCut, result.Material)
}
