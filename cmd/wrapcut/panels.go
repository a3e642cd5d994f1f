package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/project"
)

// Flags shared by every command that reads a panel file.
var (
	materialFlag string
	priceFlag    float64
	dxfScale     float64
)

// loadJob reads a job file or imports a panel list. Panel lists produce a
// job named after the file with no material or price set, so the config
// defaults apply. Rows that fail to import are logged and skipped.
func loadJob(path string) (model.PrintJob, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var res importer.ImportResult
	switch ext {
	case ".json", ".yaml", ".yml":
		job, err := project.LoadJob(path)
		if err != nil {
			return model.PrintJob{}, err
		}
		logger.Debug("Loaded job file", zap.String("path", path), zap.Int("panels", len(job.Panels)))
		return job, nil
	case ".csv", ".tsv", ".txt":
		res = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		res = importer.ImportExcel(path)
	case ".dxf":
		res = importer.ImportDXF(path, dxfScale)
	default:
		return model.PrintJob{}, fmt.Errorf("unsupported panel file type %q", ext)
	}

	for _, w := range res.Warnings {
		logger.Warn("Import warning", zap.String("file", path), zap.String("detail", w))
	}
	for _, e := range res.Errors {
		logger.Error("Import error", zap.String("file", path), zap.String("detail", e))
	}
	if len(res.Panels) == 0 {
		if len(res.Errors) > 0 {
			return model.PrintJob{}, fmt.Errorf("no valid panels in %s: %s", path, res.Errors[0])
		}
		return model.PrintJob{}, fmt.Errorf("no valid panels in %s", path)
	}

	job := model.NewPrintJob(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	job.Material = ""
	job.Panels = res.Panels
	logger.Info("Imported panels",
		zap.String("file", path),
		zap.Int("panels", len(res.Panels)),
		zap.Int("errors", len(res.Errors)))
	return job, nil
}

// applyJobFlags resolves the job's material and price: command-line flags
// first, then the job's own values, then the config defaults.
func applyJobFlags(job *model.PrintJob, cfg model.AppConfig) error {
	if materialFlag != "" {
		m, err := model.ParseMaterialClass(materialFlag)
		if err != nil {
			return err
		}
		if m != job.Material {
			job.PricePerLinearFoot = 0
		}
		job.Material = m
	}
	if priceFlag > 0 {
		job.PricePerLinearFoot = priceFlag
	}
	cfg.ApplyToJob(job)
	return nil
}
