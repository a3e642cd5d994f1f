package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/accounting"
	"github.com/piwi3910/WrapCut/internal/engine"
	"github.com/piwi3910/WrapCut/internal/export"
	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/plotter"
	"github.com/piwi3910/WrapCut/internal/project"
)

const maxRecentJobs = 10

var (
	pdfOut      string
	labelsOut   string
	xlsxOut     string
	hpglDir     string
	saveJobOut  string
	cutterName  string
	cutterSpeed int
	cutterForce int
)

// layoutCmd decomposes a job and prints its strips
var layoutCmd = &cobra.Command{
	Use:   "layout FILE",
	Short: "Split a job's panels into print strips",
	Long: `Imports a panel list or job file, decomposes every panel into print
strips and prints the strip table with linear feet and material cost.

Example:
  wrapcut layout sprinter.csv --material cast --pdf sprinter.pdf
  wrapcut layout van.dxf --dxf-scale 0.0393701 --hpgl-dir ./plt`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	addJobFlags(layoutCmd)
	layoutCmd.Flags().StringVar(&pdfOut, "pdf", "", "Write the production sheet PDF to this path")
	layoutCmd.Flags().StringVar(&labelsOut, "labels", "", "Write strip labels (Avery 5160) to this path")
	layoutCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Write the cut-list workbook to this path")
	layoutCmd.Flags().StringVar(&hpglDir, "hpgl-dir", "", "Write one HPGL trim program per strip into this directory")
	layoutCmd.Flags().StringVar(&saveJobOut, "save-job", "", "Save the job with its layout (.json, .yaml)")
	layoutCmd.Flags().StringVar(&cutterName, "cutter", "", "Cutter profile for HPGL (default from config)")
	layoutCmd.Flags().IntVar(&cutterSpeed, "speed", 0, "Blade speed in cm/s (default from config)")
	layoutCmd.Flags().IntVar(&cutterForce, "force", 0, "Blade force in grams (default from config)")
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&materialFlag, "material", "m", "", "Material class: cast or cut (default from job or config)")
	cmd.Flags().Float64Var(&priceFlag, "price", 0, "Price per linear foot (default from job or config)")
	cmd.Flags().Float64Var(&dxfScale, "dxf-scale", importer.ScaleInches, "Inches per DXF drawing unit")
}

func runLayout(cmd *cobra.Command, args []string) error {
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
	if err := applyJobFlags(&job, cfg); err != nil {
		return err
	}

	result, err := engine.New(cfg.Constants).LayoutJob(ctx, job)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}
	summary := accounting.Summarize(result, job.PricePerLinearFoot)
	logger.Info("Decomposed job",
		zap.String("job", job.Name),
		zap.String("material", job.Material.String()),
		zap.Int("panels", len(result.Panels)),
		zap.Int("strips", summary.TotalStrips),
		zap.Float64("linear_feet", summary.TotalLinearFeet))

	out := cmd.OutOrStdout()
	printLayout(out, job, result, summary)

	if err := writeExports(out, job, result, cfg); err != nil {
		return err
	}

	if saveJobOut != "" {
		job.Result = &result
		if err := project.SaveJob(saveJobOut, job); err != nil {
			return err
		}
		cfg.AddRecentJob(saveJobOut, maxRecentJobs)
		if err := project.SaveAppConfig(resolveConfigPath(), cfg); err != nil {
			logger.Warn("Failed to record recent job", zap.Error(err))
		}
		fmt.Fprintf(out, "Saved job to %s\n", saveJobOut)
	}
	return nil
}

func printLayout(out io.Writer, job model.PrintJob, result model.LayoutResult, summary accounting.JobSummary) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%s, $%.2f/lf)", job.Name, job.Material, job.PricePerLinearFoot)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tSTRIP\tSTART\tEND\tPRINT W\tPRINT H\tSQFT\tFILE")
	for _, s := range result.AllStrips() {
		fmt.Fprintf(w, "%s\t%d/%d\t%.2f\t%.2f\t%.3f\t%.3f\t%.2f\t%s\n",
			s.PanelLabel, s.StripNumber, s.TotalStrips, s.StartY, s.EndY,
			s.PrintWidth, s.PrintHeight, s.Sqft, s.Filename)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nStrips: %d  Linear feet: %.2f  Material cost: $%.2f\n",
		summary.TotalStrips, summary.TotalLinearFeet, summary.TotalCost)
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Panel area %.2f sqft, printed %.2f sqft, seam overlap %.2f sqft",
		summary.TotalPanelSqft, summary.TotalStripSqft, summary.OverlapSqft())))
}

func writeExports(out io.Writer, job model.PrintJob, result model.LayoutResult, cfg model.AppConfig) error {
	if pdfOut != "" {
		if err := export.ExportPDF(pdfOut, job, result, cfg.Constants); err != nil {
			return fmt.Errorf("pdf export failed: %w", err)
		}
		fmt.Fprintf(out, "Wrote production sheet to %s\n", pdfOut)
	}
	if labelsOut != "" {
		if err := export.ExportLabels(labelsOut, job, result); err != nil {
			return fmt.Errorf("label export failed: %w", err)
		}
		fmt.Fprintf(out, "Wrote strip labels to %s\n", labelsOut)
	}
	if xlsxOut != "" {
		if err := export.ExportXLSX(xlsxOut, job, result); err != nil {
			return fmt.Errorf("xlsx export failed: %w", err)
		}
		fmt.Fprintf(out, "Wrote cut list to %s\n", xlsxOut)
	}
	if hpglDir != "" {
		paths, err := newCutter(cfg).WriteAll(hpglDir, result)
		if err != nil {
			return fmt.Errorf("hpgl export failed: %w", err)
		}
		logger.Info("Wrote HPGL programs", zap.String("dir", hpglDir), zap.Int("files", len(paths)))
		fmt.Fprintf(out, "Wrote %d HPGL programs to %s\n", len(paths), hpglDir)
	}
	return nil
}

// newCutter builds the HPGL generator from flags, falling back to config.
// Custom profiles are loaded first so they can be selected by name.
func newCutter(cfg model.AppConfig) *plotter.Generator {
	profiles, err := project.LoadCustomProfiles(profilesPath())
	if err != nil {
		logger.Warn("Failed to load custom cutter profiles", zap.Error(err))
	} else {
		plotter.CustomProfiles = profiles
	}

	name := cfg.CutterProfile
	if cutterName != "" {
		name = cutterName
	}
	speed := cfg.CutterSpeed
	if cutterSpeed > 0 {
		speed = cutterSpeed
	}
	force := cfg.CutterForce
	if cutterForce > 0 {
		force = cutterForce
	}

	profile := plotter.GetProfile(name)
	if profile.Name != name {
		logger.Warn("Unknown cutter profile, using fallback", zap.String("requested", name), zap.String("profile", profile.Name))
	}
	return plotter.New(profile, speed, force, cfg.Constants)
}
