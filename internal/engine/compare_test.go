package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WrapCut/internal/model"
)

func TestCompareMaterials_CoversEveryMaterial(t *testing.T) {
	prices := map[model.MaterialClass]float64{
		model.MaterialCast: 12.5,
		model.MaterialCut:  7.75,
	}
	panels := []model.PanelDefinition{panel("Driver Side", 60, 144)}

	results, err := CompareMaterials(context.Background(), model.DefaultPrintConstants(), panels, prices)
	require.NoError(t, err)
	require.Len(t, results, 2)

	cast, cut := results[0], results[1]
	assert.Equal(t, model.MaterialCast, cast.Material)
	assert.Equal(t, model.MaterialCut, cut.Material)

	assert.Equal(t, 3, cast.Strips)
	assert.Equal(t, 2, cast.Seams)
	assert.InDelta(t, 145.75/12.0, cast.LinearFeet, 1e-9)
	assert.InDelta(t, cast.LinearFeet*12.5, cast.Cost, 1e-9)
	assert.Equal(t, 12.5, cast.PricePerLinearFoot)

	// Cut: [0, 51.5], [51, 102.5], [102, 144]
	assert.Equal(t, 3, cut.Strips)
	assert.InDelta(t, 145.75/12.0, cut.LinearFeet, 1e-9)
	assert.InDelta(t, 2*0.5*60/144, cut.OverlapSqft, 1e-9)

	best, ok := Cheapest(results)
	require.True(t, ok)
	assert.Equal(t, model.MaterialCut, best.Material)
}

func TestCompareMaterials_NarrowerRollNeedsMoreStrips(t *testing.T) {
	// 104 in fits two cast strips (53 + 53.5 > 104) but needs three cut strips.
	panels := []model.PanelDefinition{panel("Box Side", 90, 104)}

	results, err := CompareMaterials(context.Background(), model.DefaultPrintConstants(), panels, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, results[0].Strips)
	assert.Equal(t, 3, results[1].Strips)
	assert.Equal(t, 0.0, results[1].Cost, "missing price counts as zero")
}

func TestCompareMaterials_PropagatesErrors(t *testing.T) {
	panels := []model.PanelDefinition{{Label: "Broken", Width: -1, Height: 10}}
	_, err := CompareMaterials(context.Background(), model.DefaultPrintConstants(), panels, nil)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestCheapest_Empty(t *testing.T) {
	_, ok := Cheapest(nil)
	assert.False(t, ok)
}
