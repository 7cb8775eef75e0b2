package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rfam/rfamops/internal/adapters/driven/config/file"
	"github.com/rfam/rfamops/internal/adapters/driven/extract"
	"github.com/rfam/rfamops/internal/adapters/driven/fasta"
	"github.com/rfam/rfamops/internal/adapters/driven/storage/memory"
	"github.com/rfam/rfamops/internal/adapters/driven/storage/rfamdb"
	"github.com/rfam/rfamops/internal/adapters/driven/storage/sqlite"
	"github.com/rfam/rfamops/internal/adapters/driving/cli"
	"github.com/rfam/rfamops/internal/connectors/ena"
	"github.com/rfam/rfamops/internal/connectors/httpfetch"
	"github.com/rfam/rfamops/internal/connectors/uniprot"
	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/core/ports/driving"
	"github.com/rfam/rfamops/internal/core/services"
	"github.com/rfam/rfamops/internal/logger"
)

// bootstrap wires adapters into services for the given config directory.
func bootstrap(configDir string) (*cli.Services, error) {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config file unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	fetcher := httpfetch.NewClient(httpfetch.ConfigFromSettings(settings.Fetch))
	proteomes := uniprot.NewCatalog(fetcher, settings.Fetch.UniProtBaseURL)
	assemblies := ena.NewCatalog(fetcher, settings.Fetch.ENABaseURL)

	outcomes, closeLedger := openLedger(settings.Ledger, configDir)

	return &cli.Services{
		Settings: settingsService,
		Proteome: services.NewProteomeResolver(proteomes),
		Genome:   services.NewGenomeDownloader(fetcher, assemblies, outcomes, settings.Fetch.Workers),
		Exporter: exporterFactory(settings),
		Close:    closeLedger,
	}, nil
}

// openLedger opens the SQLite outcome ledger, falling back to memory when
// it is disabled or cannot be opened.
func openLedger(cfg domain.LedgerSettings, configDir string) (driven.OutcomeStore, func() error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return memory.NewOutcomeStore(), noop
	}

	dir := cfg.Dir
	if dir == "" && configDir != "" {
		dir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("Outcome ledger unavailable, keeping outcomes in memory: %v", err)
		return memory.NewOutcomeStore(), noop
	}
	logger.Debug("Outcome ledger at %s", store.Path())
	return store.OutcomeStore(), store.Close
}

// exporterFactory defers opening the region database until an export runs.
func exporterFactory(settings *domain.AppSettings) cli.ExporterFactory {
	return func(ctx context.Context) (driving.ExportService, func() error, error) {
		regions, err := rfamdb.Open(ctx, settings.Export.DatabaseDriver, settings.Export.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		exporter := services.NewFamilyExporter(
			regions,
			extract.NewSfetch(settings.ESLSfetchPath()),
			fasta.NewSinkFactory(settings.Export.LineWidth),
		)
		return exporter, regions.Close, nil
	}
}
