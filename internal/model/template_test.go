package model

import (
	"testing"
)

func sampleJob() PrintJob {
	job := NewPrintJob("Transit 148")
	job.Vehicle = "Ford Transit 148 High Roof"
	job.Material = MaterialCut
	job.Panels = []PanelDefinition{
		NewPanel("Driver Side", 60, 144, 62),
		NewPanel("Hood", 40, 52, 15),
	}
	return job
}

func TestNewJobTemplate(t *testing.T) {
	tmpl := NewJobTemplate("Transit", "Standard fleet van", sampleJob())

	if tmpl.Name != "Transit" {
		t.Errorf("expected name 'Transit', got %q", tmpl.Name)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" || tmpl.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}
	if tmpl.Vehicle != "Ford Transit 148 High Roof" {
		t.Errorf("expected vehicle to be copied, got %q", tmpl.Vehicle)
	}
	if len(tmpl.Panels) != 2 {
		t.Errorf("expected 2 panels, got %d", len(tmpl.Panels))
	}
}

func TestNewJobTemplateCopiesPanels(t *testing.T) {
	job := sampleJob()
	tmpl := NewJobTemplate("Transit", "", job)

	job.Panels[0].Label = "Changed"
	if tmpl.Panels[0].Label != "Driver Side" {
		t.Error("template panels should not alias the job's panels")
	}
}

func TestNewJobTemplateNilPanels(t *testing.T) {
	tmpl := NewJobTemplate("Empty", "", PrintJob{})
	if tmpl.Panels == nil {
		t.Error("Panels should not be nil")
	}
}

func TestJobTemplate_ToJob(t *testing.T) {
	tmpl := NewJobTemplate("Transit", "", sampleJob())
	job := tmpl.ToJob("Acme Plumbing Van")

	if job.Name != "Acme Plumbing Van" {
		t.Errorf("expected job name 'Acme Plumbing Van', got %q", job.Name)
	}
	if job.Material != MaterialCut {
		t.Errorf("expected material cut, got %s", job.Material)
	}
	if len(job.Panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(job.Panels))
	}
	if job.Panels[0].ID == tmpl.Panels[0].ID {
		t.Error("job panels should get fresh IDs")
	}
	if job.Panels[0].Sqft != 62 {
		t.Errorf("expected sqft 62 to be carried over, got %.2f", job.Panels[0].Sqft)
	}
	if job.Result != nil {
		t.Error("jobs created from templates should have no result")
	}
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	a := NewJobTemplate("A", "", sampleJob())
	b := NewJobTemplate("B", "", sampleJob())
	store.Add(a)
	store.Add(b)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}
	if store.FindByName("B") == nil {
		t.Error("expected to find template B by name")
	}
	if store.FindByID(a.ID) == nil {
		t.Error("expected to find template A by ID")
	}
	names := store.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names %v", names)
	}

	if !store.Remove(a.ID) {
		t.Error("expected Remove to report success")
	}
	if store.Remove(a.ID) {
		t.Error("expected second Remove to report failure")
	}
	if store.FindByID(a.ID) != nil {
		t.Error("template A should be gone")
	}
}

func TestTemplateStoreAddReplacesSameName(t *testing.T) {
	store := NewTemplateStore()
	first := NewJobTemplate("Transit", "v1", sampleJob())
	store.Add(first)

	second := NewJobTemplate("Transit", "v2", sampleJob())
	second.CreatedAt = "later"
	store.Add(second)

	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template after replace, got %d", len(store.Templates))
	}
	if store.Templates[0].Description != "v2" {
		t.Errorf("expected replaced description v2, got %q", store.Templates[0].Description)
	}
	if store.Templates[0].CreatedAt != first.CreatedAt {
		t.Error("expected original CreatedAt to be kept on replace")
	}
}
