package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WrapCut/internal/model"
)

func sprinterJob() model.PrintJob {
	job := model.NewPrintJob("Sprinter 170")
	job.Customer = "Acme Plumbing"
	job.Vehicle = "2023 Mercedes Sprinter 170"
	job.PricePerLinearFoot = 12.5
	job.Panels = []model.PanelDefinition{
		model.NewPanel("Driver Side", 60, 144, 0),
		model.NewPanel("Hood", 40, 52, 12.1),
	}
	return job
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("job.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("JOB.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("job.json"))
	assert.Equal(t, FormatJSON, FormatForPath("job"))
}

func TestSaveAndLoadJob_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs", "sprinter.json")
	job := sprinterJob()

	require.NoError(t, SaveJob(path, job))

	loaded, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, job, loaded)
}

func TestSaveAndLoadJob_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprinter.yaml")
	job := sprinterJob()

	require.NoError(t, SaveJob(path, job))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "label: Driver Side")

	loaded, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, job, loaded)
}

func TestLoadJob_HandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box-truck.yml")
	data := strings.Join([]string{
		"name: Box truck",
		"material: cut",
		"panels:",
		"  - label: Left box side",
		"    width: 96",
		"    height: 192",
		"    sqft: 128",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, model.MaterialCut, job.Material)
	require.Len(t, job.Panels, 1)
	assert.Equal(t, 192.0, job.Panels[0].Height)
	assert.Equal(t, 128.0, job.Panels[0].Sqft)
}

func TestLoadJob_DefaultsToCast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, model.MaterialCast, job.Material)
	assert.NotNil(t, job.Panels)
}

func TestLoadJob_UnknownMaterial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x","material":"paint"}`), 0644))

	_, err := LoadJob(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownMaterialClass))
}

func TestLoadJob_InvalidPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	data := `{"name":"x","material":"cast","panels":[{"label":"ok","width":10,"height":10},{"label":"bad","width":0,"height":10}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadJob(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidDimension))
	assert.Contains(t, err.Error(), "panel 2")
}

func TestLoadJob_MissingFile(t *testing.T) {
	_, err := LoadJob(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadJob_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panels: [unterminated"), 0644))

	_, err := LoadJob(path)
	assert.Error(t, err)
}
