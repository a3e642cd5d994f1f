// WrapCut: vinyl wrap print-layout engine
//
// Splits vehicle wrap panels into printable strips for the roll width of
// cast or cut vinyl, prices the job in linear feet and exports production
// sheets, strip labels, cut lists and contour-cut HPGL.
//
// Build:
//   go build -o wrapcut ./cmd/wrapcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o wrapcut.exe ./cmd/wrapcut
//   GOOS=darwin  GOARCH=arm64 go build -o wrapcut-darwin ./cmd/wrapcut

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/project"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataDir    string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wrapcut",
	Short: "WrapCut - vinyl wrap print-layout engine",
	Long: `WrapCut splits vehicle wrap panels into printable strips.

Panels taller than the usable roll width are cut into strips that share a
seam overlap, every strip gets bleed on all four edges, and the job is
priced by the linear feet of roll it consumes.

Panel lists are read from CSV, Excel, DXF or saved job files (JSON/YAML).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.wrapcut/config.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for inventory, templates and cutter profiles (default: ~/.wrapcut)")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(dpiCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(cutterCmd)
	rootCmd.AddCommand(backupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns the command's context, cancelled on SIGINT or
// SIGTERM.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if dataDir != "" {
		return filepath.Join(dataDir, "config.json")
	}
	return project.DefaultConfigPath()
}

func inventoryPath() string {
	if dataDir != "" {
		return filepath.Join(dataDir, "inventory.json")
	}
	return project.DefaultInventoryPath()
}

func templatesPath() string {
	if dataDir != "" {
		return filepath.Join(dataDir, "templates.json")
	}
	return project.DefaultTemplatePath()
}

func profilesPath() string {
	if dataDir != "" {
		return filepath.Join(dataDir, "profiles.json")
	}
	return project.DefaultProfilesPath()
}

// loadConfig reads the app config and rejects print constants the engine
// cannot work with.
func loadConfig() (model.AppConfig, error) {
	path := resolveConfigPath()
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Constants.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	logger.Debug("Loaded config", zap.String("path", path), zap.String("default_material", cfg.DefaultMaterial.String()))
	return cfg, nil
}
