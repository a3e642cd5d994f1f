package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/project"
)

// backupCmd exports and restores all application data
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore config, inventory, templates and cutter profiles",
}

var backupExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write all application data to a single JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Restore application data from a backup file",
	Long: `Replaces the config, inventory, templates and custom cutter profiles
with the contents of a backup written by "wrapcut backup export".`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	inv, err := project.LoadInventory(inventoryPath())
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	store, err := loadTemplateStore()
	if err != nil {
		return err
	}
	profiles, err := project.LoadCustomProfiles(profilesPath())
	if err != nil {
		return fmt.Errorf("failed to load cutter profiles: %w", err)
	}

	if err := project.ExportAllData(args[0], project.NewBackup(cfg, inv, store, profiles)); err != nil {
		return err
	}
	logger.Info("Exported backup", zap.String("path", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	backup, err := project.ImportAllData(args[0])
	if err != nil {
		return err
	}
	if err := backup.Config.Constants.Validate(); err != nil {
		return fmt.Errorf("backup config: %w", err)
	}

	if err := project.SaveAppConfig(resolveConfigPath(), backup.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	if err := project.SaveInventory(inventoryPath(), backup.Inventory); err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}
	if err := project.SaveTemplates(templatesPath(), backup.Templates); err != nil {
		return fmt.Errorf("failed to restore templates: %w", err)
	}
	if err := project.SaveCustomProfiles(profilesPath(), backup.Profiles); err != nil {
		return fmt.Errorf("failed to restore cutter profiles: %w", err)
	}

	logger.Info("Restored backup", zap.String("path", args[0]), zap.String("created_at", backup.CreatedAt))
	fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s (created %s)\n", args[0], backup.CreatedAt)
	return nil
}
