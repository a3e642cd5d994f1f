package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/accounting"
)

// dpiCmd classifies artwork resolution
var dpiCmd = &cobra.Command{
	Use:   "dpi PIXELS INCHES [PIXELS INCHES]",
	Short: "Check artwork resolution at print size",
	Long: `Computes the effective DPI of artwork printed at a given size and
classifies it against the configured target and minimum DPI.

With two pairs the first is the horizontal axis and the second the
vertical axis; the worse axis decides the overall result.

Example:
  wrapcut dpi 18000 60
  wrapcut dpi 18000 60 43200 144`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != 4 {
			return fmt.Errorf("expected 2 or 4 arguments, got %d", len(args))
		}
		return nil
	},
	RunE: runDPI,
}

func runDPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", a)
		}
		vals[i] = v
	}

	calc := accounting.New(cfg.Constants)
	out := cmd.OutOrStdout()

	if len(vals) == 2 {
		res, err := calc.ClassifyDPI(vals[0], vals[1])
		if err != nil {
			return err
		}
		logger.Debug("Classified DPI", zap.Int("dpi", res.DPI), zap.String("status", string(res.Status)))
		printDPI(cmd, "", res)
		return nil
	}

	check, err := calc.CheckArtwork(vals[0], vals[2], vals[1], vals[3])
	if err != nil {
		return err
	}
	printDPI(cmd, "Horizontal: ", check.Horizontal)
	printDPI(cmd, "Vertical:   ", check.Vertical)
	fmt.Fprintln(out)
	printDPI(cmd, "Overall:    ", check.Overall)
	return nil
}

func printDPI(cmd *cobra.Command, prefix string, res accounting.DPIResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s%d DPI  %s\n", prefix, res.DPI, dpiStyle(res.Status).Render(res.Label))
}
