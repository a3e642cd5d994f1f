package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/plotter"
	"github.com/piwi3910/WrapCut/internal/project"
)

// cutterCmd manages contour cutter profiles
var cutterCmd = &cobra.Command{
	Use:   "cutter",
	Short: "Manage contour cutter profiles",
}

var cutterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom cutter profiles",
	Args:  cobra.NoArgs,
	RunE:  runCutterList,
}

var cutterImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Add a custom cutter profile from a JSON file",
	Long: `Adds the profile in FILE to the custom profiles. A custom profile
with the same name is replaced; one named like a built-in shadows it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCutterImport,
}

var cutterExportCmd = &cobra.Command{
	Use:   "export NAME FILE",
	Short: "Write a cutter profile to a JSON file for sharing",
	Args:  cobra.ExactArgs(2),
	RunE:  runCutterExport,
}

func init() {
	cutterCmd.AddCommand(cutterListCmd)
	cutterCmd.AddCommand(cutterImportCmd)
	cutterCmd.AddCommand(cutterExportCmd)
}

func loadCutterProfiles() error {
	profiles, err := project.LoadCustomProfiles(profilesPath())
	if err != nil {
		return fmt.Errorf("failed to load cutter profiles: %w", err)
	}
	plotter.CustomProfiles = profiles
	return nil
}

func runCutterList(cmd *cobra.Command, args []string) error {
	if err := loadCutterProfiles(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tUNITS/IN\tDESCRIPTION")
	for _, name := range plotter.GetProfileNames() {
		p := plotter.GetProfile(name)
		kind := "custom"
		if p.IsBuiltIn {
			kind = "built-in"
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\n", p.Name, kind, p.UnitsPerInch, p.Description)
	}
	return w.Flush()
}

func runCutterImport(cmd *cobra.Command, args []string) error {
	if err := loadCutterProfiles(); err != nil {
		return err
	}
	profile, err := project.ImportProfile(args[0])
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}

	var profiles []plotter.CutterProfile
	for _, p := range plotter.CustomProfiles {
		if p.Name != profile.Name {
			profiles = append(profiles, p)
		}
	}
	profiles = append(profiles, profile)

	if err := project.SaveCustomProfiles(profilesPath(), profiles); err != nil {
		return fmt.Errorf("failed to save cutter profiles: %w", err)
	}
	plotter.CustomProfiles = profiles
	logger.Info("Imported cutter profile", zap.String("name", profile.Name))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported cutter profile %q\n", profile.Name)
	return nil
}

func runCutterExport(cmd *cobra.Command, args []string) error {
	if err := loadCutterProfiles(); err != nil {
		return err
	}
	name, path := args[0], args[1]
	profile := plotter.GetProfile(name)
	if profile.Name != name {
		return fmt.Errorf("cutter profile %q not found", name)
	}
	if err := project.ExportProfile(path, profile); err != nil {
		return fmt.Errorf("failed to export profile: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported cutter profile %q to %s\n", name, path)
	return nil
}
