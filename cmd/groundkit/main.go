// Command groundkit is the entry point for the groundkit CLI.
// It wires the storage backend, extractors and services together
// according to the persisted settings, then hands off to cobra.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/groundkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/groundkit/internal/adapters/driven/generator/ollama"
	"github.com/custodia-labs/groundkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/groundkit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/groundkit/internal/adapters/driving/cli"
	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/services"
	"github.com/custodia-labs/groundkit/internal/extractors"
	"github.com/custodia-labs/groundkit/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := openStore(settings)
	if err != nil {
		return fmt.Errorf("open knowledge store: %w", err)
	}
	defer store.Close()

	registry := extractors.NewRegistry()
	extractors.RegisterDefaults(registry)

	ingestService := services.NewIngestOrchestrator(registry, store, services.IngestConfig{
		ExtractWorkers: settings.Ingest.Workers,
		ExtractTimeout: settings.Ingest.Timeout,
	})

	var generator driven.Generator
	if settings.Generator.Enabled {
		generator = ollama.New(ollama.Config{
			BaseURL: settings.Generator.BaseURL,
			Model:   settings.Generator.Model,
			Timeout: 2 * time.Minute,
		})
		defer generator.Close()
	}

	var prompts driven.PromptStore
	if ps, err := file.NewPromptStore(""); err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		prompts = ps
	}

	queryService := services.NewQueryOrchestrator(store, generator, prompts)

	cli.SetServices(ingestService, queryService, settingsService, registry)
	cli.SetVersion(version)
	return cli.Execute()
}

// openStore selects the knowledge store backend from settings.
func openStore(settings *domain.AppSettings) (driven.KnowledgeStore, error) {
	switch settings.Storage.Backend {
	case domain.StorageMemory:
		return memory.NewKnowledgeStore(), nil
	case domain.StorageSQLite, "":
		return sqlite.NewStore(settings.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", settings.Storage.Backend)
	}
}
