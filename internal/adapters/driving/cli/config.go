package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var (
	generatorDisable bool
	generatorURL     string
	generatorModel   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and configure the storage backend, ingestion limits and the
answer generator.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configStorageCmd = &cobra.Command{
	Use:   "storage [backend]",
	Short: "Set the storage backend",
	Long: `Set where knowledge is stored.

Available backends:
  memory - in-memory only, lost on exit
  sqlite - persistent SQLite database (default)`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigStorage,
}

var configGeneratorCmd = &cobra.Command{
	Use:   "generator",
	Short: "Configure the answer generator",
	Long: `Enable or disable the Ollama-backed answer generator used by
'groundkit query --answer'.`,
	RunE: runConfigGenerator,
}

func init() {
	configGeneratorCmd.Flags().BoolVar(&generatorDisable, "disable", false, "disable the generator")
	configGeneratorCmd.Flags().StringVar(&generatorURL, "url", "", "Ollama base URL")
	configGeneratorCmd.Flags().StringVar(&generatorModel, "model", "", "generator model name")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configStorageCmd)
	configCmd.AddCommand(configGeneratorCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend)
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data dir: %s\n", settings.Storage.DataDir)
	}
	cmd.Println()

	cmd.Println("[Ingest]")
	cmd.Printf("  Workers: %d\n", settings.Ingest.Workers)
	cmd.Printf("  Timeout: %s\n", settings.Ingest.Timeout)
	cmd.Println()

	cmd.Println("[Generator]")
	if settings.Generator.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Base URL: %s\n", settings.Generator.BaseURL)
		cmd.Printf("  Model: %s\n", settings.Generator.Model)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Rate: %.1f files/s (burst %d)\n",
		settings.Watch.EventsPerSecond, settings.Watch.Burst)

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: settings are not valid: %v\n", err)
	}
	return nil
}

func runConfigStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StorageBackend(args[0])
	if err := settingsService.SetStorageBackend(backend); err != nil {
		return fmt.Errorf("set storage backend: %w", err)
	}

	cmd.Printf("Storage backend set to %s.\n", backend)
	if backend == domain.StorageMemory {
		cmd.Println("Note: in-memory knowledge is lost when the process exits.")
	}
	return nil
}

func runConfigGenerator(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled := !generatorDisable
	if err := settingsService.SetGenerator(enabled, generatorURL, generatorModel); err != nil {
		return fmt.Errorf("configure generator: %w", err)
	}

	if enabled {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Printf("Generator enabled (%s, model %s).\n",
			settings.Generator.BaseURL, settings.Generator.Model)
	} else {
		cmd.Println("Generator disabled.")
	}
	return nil
}
