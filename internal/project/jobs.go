// Package project persists WrapCut jobs, configuration, inventory,
// templates and cutter profiles on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/WrapCut/internal/model"
)

// JobFormat identifies the on-disk encoding of a job file.
type JobFormat int

const (
	FormatJSON JobFormat = iota
	FormatYAML
)

// FormatForPath picks the job encoding from a file extension. Anything
// other than .yaml or .yml is JSON.
func FormatForPath(path string) JobFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// SaveJob writes a job to path, encoded according to its extension.
func SaveJob(path string, job model.PrintJob) error {
	var (
		data []byte
		err  error
	)
	switch FormatForPath(path) {
	case FormatYAML:
		data, err = yaml.Marshal(job)
	default:
		data, err = json.MarshalIndent(job, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// LoadJob reads a job file and validates its material and panels. A job
// with no material is treated as cast.
func LoadJob(path string) (model.PrintJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PrintJob{}, fmt.Errorf("failed to read job file: %w", err)
	}

	var job model.PrintJob
	switch FormatForPath(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &job)
	default:
		err = json.Unmarshal(data, &job)
	}
	if err != nil {
		return model.PrintJob{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	if job.Material == "" {
		job.Material = model.MaterialCast
	}
	if !job.Material.Valid() {
		return model.PrintJob{}, fmt.Errorf("%w: %q", model.ErrUnknownMaterialClass, string(job.Material))
	}
	if job.Panels == nil {
		job.Panels = []model.PanelDefinition{}
	}
	for i, p := range job.Panels {
		if err := model.ValidatePanel(p); err != nil {
			return model.PrintJob{}, fmt.Errorf("panel %d: %w", i+1, err)
		}
	}
	return job, nil
}
