package model

import (
	"time"

	"github.com/google/uuid"
)

// JobTemplate is a reusable panel set, e.g. a fleet vehicle the shop wraps
// repeatedly. It captures panels and material but never layout results.
type JobTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Vehicle     string            `json:"vehicle"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Material    MaterialClass     `json:"material"`
	Panels      []PanelDefinition `json:"panels"`
}

// NewJobTemplate creates a new template from the given job.
func NewJobTemplate(name, description string, job PrintJob) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		Vehicle:     job.Vehicle,
		CreatedAt:   now,
		UpdatedAt:   now,
		Material:    job.Material,
		Panels:      copyPanels(job.Panels),
	}
}

// ToJob creates a new PrintJob from this template.
// Panels get fresh IDs so they are independent of the template.
func (t JobTemplate) ToJob(jobName string) PrintJob {
	panels := make([]PanelDefinition, len(t.Panels))
	for i, p := range t.Panels {
		panels[i] = NewPanel(p.Label, p.Width, p.Height, p.Sqft)
	}

	job := NewPrintJob(jobName)
	job.Vehicle = t.Vehicle
	job.Panels = panels
	if t.Material != "" {
		job.Material = t.Material
	}
	return job
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []JobTemplate{},
	}
}

// Add adds a template to the store, replacing any template with the same name.
func (ts *TemplateStore) Add(t JobTemplate) {
	for i := range ts.Templates {
		if ts.Templates[i].Name == t.Name {
			t.CreatedAt = ts.Templates[i].CreatedAt
			ts.Templates[i] = t
			return
		}
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func copyPanels(panels []PanelDefinition) []PanelDefinition {
	if panels == nil {
		return []PanelDefinition{}
	}
	cp := make([]PanelDefinition, len(panels))
	copy(cp, panels)
	return cp
}
