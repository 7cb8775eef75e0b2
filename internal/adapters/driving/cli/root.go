// Package cli provides the rfamops command line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfam/rfamops/internal/core/ports/driving"
	"github.com/rfam/rfamops/internal/logger"
)

// ExporterFactory opens an export service bound to the family region store.
// The returned close function releases the store.
type ExporterFactory func(ctx context.Context) (driving.ExportService, func() error, error)

// Services bundles what the commands drive.
type Services struct {
	Settings driving.SettingsService
	Proteome driving.ProteomeService
	Genome   driving.GenomeService
	Exporter ExporterFactory

	// Close releases resources held by the services, if set.
	Close func() error
}

// BootstrapFunc builds the services once flags are parsed.
type BootstrapFunc func(configDir string) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	settingsService driving.SettingsService
	proteomeService driving.ProteomeService
	genomeService   driving.GenomeService
	exporterFactory ExporterFactory
	closeServices   func() error

	bootstrap BootstrapFunc
)

var rootCmd = &cobra.Command{
	Use:   "rfamops",
	Short: "Rfam genome and sequence operations",
	Long: `rfamops resolves reference proteomes to genome assemblies, downloads
assembly sequence entries from ENA and exports family regions as FASTA.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.rfamops)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs already built services.
func SetServices(s *Services) {
	settingsService = s.Settings
	proteomeService = s.Proteome
	genomeService = s.Genome
	exporterFactory = s.Exporter
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if closeErr := closeServices(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		closeServices = nil
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || cmd.Name() == versionCmd.Name() {
		return nil
	}
	services, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}
