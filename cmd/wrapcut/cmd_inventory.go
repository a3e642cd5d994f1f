package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/project"
)

var inventoryMaterial string

// inventoryCmd manages vinyl roll presets
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage vinyl roll presets",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roll presets",
	Args:  cobra.NoArgs,
	RunE:  runInventoryList,
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Merge roll presets from a JSON file",
	Long: `Adds the roll presets of FILE to the inventory. Presets whose ID is
already present are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runInventoryImport,
}

var inventoryExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the inventory to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryExport,
}

func init() {
	inventoryListCmd.Flags().StringVarP(&inventoryMaterial, "material", "m", "", "Only list rolls of this material class")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryImportCmd)
	inventoryCmd.AddCommand(inventoryExportCmd)
}

func runInventoryList(cmd *cobra.Command, args []string) error {
	inv, err := project.LoadInventory(inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	rolls := inv.Rolls
	if inventoryMaterial != "" {
		m, err := model.ParseMaterialClass(inventoryMaterial)
		if err != nil {
			return err
		}
		rolls = inv.ByMaterial(m)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tMATERIAL\tWIDTH\tLENGTH\t$/LF\t$/ROLL")
	for _, r := range rolls {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f in\t%.0f ft\t%.2f\t%.2f\n",
			r.ID, r.Name, r.Brand, r.Material, r.RollWidth, r.RollLength, r.PricePerLinearFoot, r.PricePerRoll)
	}
	return w.Flush()
}

func runInventoryImport(cmd *cobra.Command, args []string) error {
	path := inventoryPath()
	inv, err := project.LoadInventory(path)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	before := len(inv.Rolls)

	merged, err := project.ImportInventory(args[0], inv)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}
	if err := project.SaveInventory(path, merged); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	added := len(merged.Rolls) - before
	logger.Info("Imported roll presets", zap.String("file", args[0]), zap.Int("added", added))
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d roll presets\n", added)
	return nil
}

func runInventoryExport(cmd *cobra.Command, args []string) error {
	inv, err := project.LoadInventory(inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	if err := project.ExportInventory(args[0], inv); err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d roll presets to %s\n", len(inv.Rolls), args[0])
	return nil
}
