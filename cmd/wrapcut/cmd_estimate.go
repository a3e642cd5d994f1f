package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/accounting"
	"github.com/piwi3910/WrapCut/internal/engine"
	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/project"
)

var (
	rollName     string
	wastePercent float64
)

// estimateCmd works out how many rolls to pull for a job
var estimateCmd = &cobra.Command{
	Use:   "estimate FILE",
	Short: "Estimate the rolls to pull from stock for a job",
	Long: `Decomposes the job and converts its linear feet into whole rolls of
an inventory roll preset, adding a waste allowance for test prints and
misprints.

Example:
  wrapcut estimate sprinter.csv --roll "Oracal 3651 54\" x 150'" --waste 15`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&materialFlag, "material", "m", "", "Material class: cast or cut (default from job or config)")
	estimateCmd.Flags().Float64Var(&dxfScale, "dxf-scale", importer.ScaleInches, "Inches per DXF drawing unit")
	estimateCmd.Flags().StringVar(&rollName, "roll", "", "Roll preset name or ID (default from config)")
	estimateCmd.Flags().Float64Var(&wastePercent, "waste", -1, "Waste allowance in percent (default from config)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	inv, err := project.LoadInventory(inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	name := cfg.DefaultRollPreset
	if rollName != "" {
		name = rollName
	}
	roll := inv.FindRollByName(name)
	if roll == nil {
		roll = inv.FindRollByID(name)
	}
	if roll == nil {
		return fmt.Errorf("roll preset %q not found in inventory", name)
	}

	job, err := loadJob(args[0])
	if err != nil {
		return err
	}
	if materialFlag == "" && job.Material == "" {
		job.Material = roll.Material
	}
	if err := applyJobFlags(&job, cfg); err != nil {
		return err
	}
	if roll.Material != job.Material {
		logger.Warn("Roll material does not match job material",
			zap.String("roll", roll.Name),
			zap.String("roll_material", roll.Material.String()),
			zap.String("job_material", job.Material.String()))
	}

	result, err := engine.New(cfg.Constants).LayoutJob(ctx, job)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	waste := cfg.WastePercent
	if wastePercent >= 0 {
		waste = wastePercent
	}
	lf := accounting.ComputeLinearFeet(result.AllStrips())
	est := accounting.EstimateRolls(lf, roll.RollLength, waste, roll.PricePerRoll)
	logger.Info("Estimated rolls",
		zap.String("job", job.Name),
		zap.String("roll", roll.Name),
		zap.Int("rolls", est.RollsWithWaste))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s on %s", job.Name, roll.Name)))
	fmt.Fprintf(out, "Linear feet:        %.2f\n", est.LinearFeet)
	fmt.Fprintf(out, "With %.0f%% waste:     %.2f\n", est.WastePercent, est.FeetWithWaste)
	fmt.Fprintf(out, "Roll length:        %.0f ft\n", est.RollLength)
	fmt.Fprintf(out, "Rolls (exact):      %.2f\n", est.RollsNeededExact)
	fmt.Fprintf(out, "Rolls to pull:      %d\n", est.RollsWithWaste)
	fmt.Fprintf(out, "Estimated cost:     $%.2f\n", est.EstimatedCost)
	return nil
}
