package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/plotter"
	"github.com/piwi3910/WrapCut/internal/project"
)

// setupCLI resets the global flag state and points all data files at a
// fresh temp directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()

	dir := t.TempDir()
	dataDir = dir
	configPath = ""
	verbose = false

	materialFlag, priceFlag, dxfScale = "", 0, importer.ScaleInches
	pdfOut, labelsOut, xlsxOut, hpglDir, saveJobOut = "", "", "", "", ""
	cutterName, cutterSpeed, cutterForce = "", 0, 0
	castPrice, cutPrice = 0, 0
	rollName, wastePercent = "", -1
	forceInit = false
	inventoryMaterial = ""
	templateDescription, templateJobName = "", ""

	t.Cleanup(func() {
		dataDir = ""
		plotter.CustomProfiles = nil
	})
	return dir
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func writeSprinterCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sprinter.csv")
	data := "label,width,height\nDriver Side,60,144\nHood,40,52\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestResolvePaths(t *testing.T) {
	dir := setupCLI(t)

	assert.Equal(t, filepath.Join(dir, "config.json"), resolveConfigPath())
	assert.Equal(t, filepath.Join(dir, "inventory.json"), inventoryPath())
	assert.Equal(t, filepath.Join(dir, "templates.json"), templatesPath())
	assert.Equal(t, filepath.Join(dir, "profiles.json"), profilesPath())

	configPath = filepath.Join(dir, "custom.json")
	defer func() { configPath = "" }()
	assert.Equal(t, configPath, resolveConfigPath())
}

func TestLoadConfigRejectsBadConstants(t *testing.T) {
	dir := setupCLI(t)

	data := `{"constants": {"max_width_cast": 53.5, "max_width_cut": 51.5, "seam_overlap": 60, "bleed": 0.125, "target_dpi": 300, "min_dpi": 150}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644))

	_, err := loadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestRunDPI(t *testing.T) {
	setupCLI(t)
	cmd, out := newTestCmd()

	require.NoError(t, runDPI(cmd, []string{"18000", "60"}))
	assert.Contains(t, out.String(), "300 DPI")
	assert.Contains(t, out.String(), "Production Ready")
}

func TestRunDPI_Artwork(t *testing.T) {
	setupCLI(t)
	cmd, out := newTestCmd()

	require.NoError(t, runDPI(cmd, []string{"18000", "60", "14400", "144"}))
	assert.Contains(t, out.String(), "Horizontal: 300 DPI")
	assert.Contains(t, out.String(), "Vertical:   100 DPI")
	assert.Contains(t, out.String(), "Overall:    100 DPI")
	assert.Contains(t, out.String(), "Too low")
}

func TestRunDPI_InvalidInput(t *testing.T) {
	setupCLI(t)
	cmd, _ := newTestCmd()

	assert.Error(t, runDPI(cmd, []string{"abc", "60"}))
	assert.Error(t, runDPI(cmd, []string{"18000", "0"}))
}

func TestDPIArgs(t *testing.T) {
	assert.NoError(t, dpiCmd.Args(dpiCmd, []string{"1", "2"}))
	assert.NoError(t, dpiCmd.Args(dpiCmd, []string{"1", "2", "3", "4"}))
	assert.Error(t, dpiCmd.Args(dpiCmd, []string{"1", "2", "3"}))
}

func TestRunLayout(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)

	pdfOut = filepath.Join(dir, "out", "sprinter.pdf")
	labelsOut = filepath.Join(dir, "out", "labels.pdf")
	xlsxOut = filepath.Join(dir, "out", "cutlist.xlsx")
	hpglDir = filepath.Join(dir, "out", "plt")
	saveJobOut = filepath.Join(dir, "out", "sprinter.yaml")

	cmd, out := newTestCmd()
	require.NoError(t, runLayout(cmd, []string{csvPath}))

	text := out.String()
	assert.Contains(t, text, "sprinter (cast, $12.50/lf)")
	assert.Contains(t, text, "Driver_Side_Strip_1of3")
	assert.Contains(t, text, "Driver_Side_Strip_3of3")
	assert.Contains(t, text, "Hood_Strip_1of1")
	assert.Contains(t, text, "Strips: 4")

	for _, p := range []string{pdfOut, labelsOut, xlsxOut, saveJobOut} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
	plt, err := filepath.Glob(filepath.Join(hpglDir, "*.plt"))
	require.NoError(t, err)
	assert.Len(t, plt, 4)

	job, err := project.LoadJob(saveJobOut)
	require.NoError(t, err)
	require.NotNil(t, job.Result)
	assert.Equal(t, 4, job.Result.TotalStrips())

	cfg, err := project.LoadAppConfig(resolveConfigPath())
	require.NoError(t, err)
	assert.Equal(t, []string{saveJobOut}, cfg.RecentJobs)
}

func TestRunLayout_MaterialAndPriceFlags(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)

	materialFlag = "cut"
	cmd, out := newTestCmd()
	require.NoError(t, runLayout(cmd, []string{csvPath}))
	assert.Contains(t, out.String(), "(cut, $7.75/lf)")

	priceFlag = 9
	cmd, out = newTestCmd()
	require.NoError(t, runLayout(cmd, []string{csvPath}))
	assert.Contains(t, out.String(), "(cut, $9.00/lf)")
}

func TestRunLayout_Errors(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)
	cmd, _ := newTestCmd()

	materialFlag = "paint"
	err := runLayout(cmd, []string{csvPath})
	assert.ErrorIs(t, err, model.ErrUnknownMaterialClass)
	materialFlag = ""

	assert.Error(t, runLayout(cmd, []string{filepath.Join(dir, "panels.pdf")}))
	assert.Error(t, runLayout(cmd, []string{filepath.Join(dir, "missing.csv")}))

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("label,width,height\nBad,0,10\n"), 0644))
	assert.Error(t, runLayout(cmd, []string{empty}))
}

func TestRunCompare(t *testing.T) {
	dir := setupCLI(t)
	path := filepath.Join(dir, "door.csv")
	require.NoError(t, os.WriteFile(path, []byte("label,width,height\nSlider,60,104\n"), 0644))

	cmd, out := newTestCmd()
	require.NoError(t, runCompare(cmd, []string{path}))

	text := out.String()
	assert.Contains(t, text, "MATERIAL")
	assert.Contains(t, text, "Cheapest: cut")

	castPrice, cutPrice = 5, 9
	cmd, out = newTestCmd()
	require.NoError(t, runCompare(cmd, []string{path}))
	assert.Contains(t, out.String(), "Cheapest: cast")
}

func TestRunEstimate(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)

	cmd, out := newTestCmd()
	require.NoError(t, runEstimate(cmd, []string{csvPath}))

	text := out.String()
	assert.Contains(t, text, "3M IJ180Cv3")
	assert.Contains(t, text, "Rolls to pull:      1")
	assert.Contains(t, text, "Estimated cost:     $1450.00")
}

func TestRunEstimate_UnknownRoll(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)

	rollName = "Nonexistent Film"
	cmd, _ := newTestCmd()
	err := runEstimate(cmd, []string{csvPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigInitAndShow(t *testing.T) {
	setupCLI(t)
	cmd, out := newTestCmd()

	require.NoError(t, runConfigInit(cmd, nil))
	_, err := os.Stat(resolveConfigPath())
	require.NoError(t, err)

	assert.Error(t, runConfigInit(cmd, nil), "second init without --force should fail")
	forceInit = true
	assert.NoError(t, runConfigInit(cmd, nil))

	out.Reset()
	require.NoError(t, runConfigShow(cmd, nil))
	assert.Contains(t, out.String(), `"default_material": "cast"`)
}

func TestInventoryCommands(t *testing.T) {
	dir := setupCLI(t)
	cmd, out := newTestCmd()

	require.NoError(t, runInventoryList(cmd, nil))
	assert.Contains(t, out.String(), "Oracal 3651")
	assert.Contains(t, out.String(), "3M IJ180Cv3")

	inventoryMaterial = "cut"
	out.Reset()
	require.NoError(t, runInventoryList(cmd, nil))
	assert.Contains(t, out.String(), "Oracal 3651")
	assert.NotContains(t, out.String(), "IJ180")
	inventoryMaterial = ""

	importPath := filepath.Join(dir, "rolls.json")
	extra := model.Inventory{Rolls: []model.RollPreset{
		model.NewRollPreset("Shop Cast 60\"", "Shop", model.MaterialCast, 60, 150, 14, 1700),
	}}
	require.NoError(t, project.SaveInventory(importPath, extra))

	out.Reset()
	require.NoError(t, runInventoryImport(cmd, []string{importPath}))
	assert.Contains(t, out.String(), "Added 1 roll presets")

	exportPath := filepath.Join(dir, "export.json")
	require.NoError(t, runInventoryExport(cmd, []string{exportPath}))
	exported, err := project.LoadInventory(exportPath)
	require.NoError(t, err)
	assert.Len(t, exported.Rolls, len(model.DefaultInventory().Rolls)+1)
}

func TestTemplateCommands(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)
	cmd, out := newTestCmd()

	require.NoError(t, runTemplateList(cmd, nil))
	assert.Contains(t, out.String(), "No templates saved")

	templateDescription = "High roof, 170 wheelbase"
	require.NoError(t, runTemplateSave(cmd, []string{"Sprinter 170", csvPath}))

	out.Reset()
	require.NoError(t, runTemplateList(cmd, nil))
	assert.Contains(t, out.String(), "Sprinter 170")

	jobPath := filepath.Join(dir, "acme.yaml")
	templateJobName = "Acme van 3"
	require.NoError(t, runTemplateApply(cmd, []string{"Sprinter 170", jobPath}))

	job, err := project.LoadJob(jobPath)
	require.NoError(t, err)
	assert.Equal(t, "Acme van 3", job.Name)
	assert.Len(t, job.Panels, 2)
	assert.Equal(t, 12.5, job.PricePerLinearFoot)

	assert.Error(t, runTemplateApply(cmd, []string{"Unknown", jobPath}))

	require.NoError(t, runTemplateRemove(cmd, []string{"Sprinter 170"}))
	store, err := project.LoadTemplates(templatesPath())
	require.NoError(t, err)
	assert.Empty(t, store.Templates)
}

func TestCutterCommands(t *testing.T) {
	dir := setupCLI(t)
	cmd, out := newTestCmd()

	profilePath := filepath.Join(dir, "shop.json")
	shop := plotter.CutterProfile{Name: "Shop Cutter", Description: "Back wall", UnitsPerInch: 1000, PenSelect: "SP1"}
	require.NoError(t, project.ExportProfile(profilePath, shop))

	require.NoError(t, runCutterImport(cmd, []string{profilePath}))
	require.NoError(t, runCutterImport(cmd, []string{profilePath}))

	saved, err := project.LoadCustomProfiles(profilesPath())
	require.NoError(t, err)
	assert.Len(t, saved, 1, "re-importing a profile replaces it")

	out.Reset()
	require.NoError(t, runCutterList(cmd, nil))
	assert.Contains(t, out.String(), "Shop Cutter")
	assert.Contains(t, out.String(), "Graphtec")

	exportPath := filepath.Join(dir, "roland.json")
	require.NoError(t, runCutterExport(cmd, []string{"Roland", exportPath}))
	roland, err := project.ImportProfile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, "Roland", roland.Name)

	assert.Error(t, runCutterExport(cmd, []string{"Nope", exportPath}))
}

func TestBackupRoundTrip(t *testing.T) {
	dir := setupCLI(t)
	csvPath := writeSprinterCSV(t, dir)
	cmd, _ := newTestCmd()

	require.NoError(t, runConfigInit(cmd, nil))
	require.NoError(t, runTemplateSave(cmd, []string{"Sprinter", csvPath}))

	backupPath := filepath.Join(dir, "backup.json")
	require.NoError(t, runBackupExport(cmd, []string{backupPath}))

	restoreDir := t.TempDir()
	dataDir = restoreDir
	require.NoError(t, runBackupImport(cmd, []string{backupPath}))

	for _, name := range []string{"config.json", "inventory.json", "templates.json", "profiles.json"} {
		_, err := os.Stat(filepath.Join(restoreDir, name))
		assert.NoError(t, err, name)
	}
	store, err := project.LoadTemplates(templatesPath())
	require.NoError(t, err)
	require.Len(t, store.Templates, 1)
	assert.Equal(t, "Sprinter", store.Templates[0].Name)
}

func TestRootCommandTree(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	joined := strings.Join(names, " ")
	for _, want := range []string{"layout", "compare", "dpi", "estimate", "config", "inventory", "template", "cutter", "backup"} {
		assert.Contains(t, joined, want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
