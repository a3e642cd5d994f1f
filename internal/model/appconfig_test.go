package model

import "testing"

func TestDefaultAppConfigMatchesPrintConstants(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultPrintConstants()

	if cfg.Constants != defaults {
		t.Errorf("constants mismatch: config=%+v defaults=%+v", cfg.Constants, defaults)
	}
	if cfg.DefaultMaterial != MaterialCast {
		t.Errorf("expected default material cast, got %s", cfg.DefaultMaterial)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should not be nil")
	}
}

func TestPriceFor(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.CastPricePerFoot = 14
	cfg.CutPricePerFoot = 8

	if got := cfg.PriceFor(MaterialCast); got != 14 {
		t.Errorf("expected cast price 14, got %.2f", got)
	}
	if got := cfg.PriceFor(MaterialCut); got != 8 {
		t.Errorf("expected cut price 8, got %.2f", got)
	}
	if got := cfg.PriceFor(MaterialClass("chrome")); got != 0 {
		t.Errorf("expected 0 for unknown material, got %.2f", got)
	}
}

func TestApplyToJob(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMaterial = MaterialCut
	cfg.CutPricePerFoot = 6.5

	job := PrintJob{Name: "Box Truck"}
	cfg.ApplyToJob(&job)

	if job.Material != MaterialCut {
		t.Errorf("expected material cut, got %s", job.Material)
	}
	if job.PricePerLinearFoot != 6.5 {
		t.Errorf("expected price 6.5, got %.2f", job.PricePerLinearFoot)
	}
}

func TestApplyToJobKeepsExplicitValues(t *testing.T) {
	cfg := DefaultAppConfig()

	job := PrintJob{Name: "Trailer", Material: MaterialCut, PricePerLinearFoot: 9.99}
	cfg.ApplyToJob(&job)

	if job.Material != MaterialCut {
		t.Errorf("expected material to stay cut, got %s", job.Material)
	}
	if job.PricePerLinearFoot != 9.99 {
		t.Errorf("expected price to stay 9.99, got %.2f", job.PricePerLinearFoot)
	}
}

func TestAddRecentJob(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentJob("a.yaml", 3)
	cfg.AddRecentJob("b.yaml", 3)
	cfg.AddRecentJob("c.yaml", 3)
	cfg.AddRecentJob("a.yaml", 3)
	cfg.AddRecentJob("d.yaml", 3)

	want := []string{"d.yaml", "a.yaml", "c.yaml"}
	if len(cfg.RecentJobs) != len(want) {
		t.Fatalf("expected %d recent jobs, got %v", len(want), cfg.RecentJobs)
	}
	for i := range want {
		if cfg.RecentJobs[i] != want[i] {
			t.Errorf("recent[%d] = %s, want %s", i, cfg.RecentJobs[i], want[i])
		}
	}
}
