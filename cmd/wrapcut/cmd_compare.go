package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/engine"
	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/model"
)

var (
	castPrice float64
	cutPrice  float64
)

// compareCmd quotes a job in both material classes
var compareCmd = &cobra.Command{
	Use:   "compare FILE",
	Short: "Compare a job printed on cast and cut vinyl",
	Long: `Lays the same panels out on cast and cut vinyl and prints strips,
seams, linear feet and cost for each. Cut vinyl has a narrower usable
width, so tall panels can need an extra strip.

Example:
  wrapcut compare sprinter.csv --cast-price 12.50 --cut-price 7.75`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().Float64Var(&castPrice, "cast-price", 0, "Cast price per linear foot (default from config)")
	compareCmd.Flags().Float64Var(&cutPrice, "cut-price", 0, "Cut price per linear foot (default from config)")
	compareCmd.Flags().Float64Var(&dxfScale, "dxf-scale", importer.ScaleInches, "Inches per DXF drawing unit")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	job, err := loadJob(args[0])
	if err != nil {
		return err
	}

	prices := map[model.MaterialClass]float64{
		model.MaterialCast: cfg.CastPricePerFoot,
		model.MaterialCut:  cfg.CutPricePerFoot,
	}
	if castPrice > 0 {
		prices[model.MaterialCast] = castPrice
	}
	if cutPrice > 0 {
		prices[model.MaterialCut] = cutPrice
	}

	results, err := engine.CompareMaterials(ctx, cfg.Constants, job.Panels, prices)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %d panels", job.Name, len(job.Panels))))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tSTRIPS\tSEAMS\tLINEAR FT\t$/LF\tCOST\tOVERLAP SQFT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Material, r.Strips, r.Seams, r.LinearFeet, r.PricePerLinearFoot, r.Cost, r.OverlapSqft)
	}
	_ = w.Flush()

	if best, ok := engine.Cheapest(results); ok {
		fmt.Fprintf(out, "\nCheapest: %s ($%.2f)\n", best.Material, best.Cost)
		logger.Info("Compared materials", zap.String("job", job.Name), zap.String("cheapest", best.Material.String()))
	}
	return nil
}
