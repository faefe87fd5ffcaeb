// Package cli implements the groundkit command-line interface using
// cobra. Commands are thin: they validate arguments, call the driving
// ports and format the results. All business logic lives in the core
// services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/ports/driving"
	"github.com/custodia-labs/groundkit/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag bool
	tenantFlag  string
)

// Services injected by main before Execute.
var (
	ingestService   driving.IngestService
	queryService    driving.QueryService
	settingsService driving.SettingsService
	extractorReg    driven.ExtractorRegistry
)

var rootCmd = &cobra.Command{
	Use:   "groundkit",
	Short: "Tenant-scoped document knowledge base",
	Long: `groundkit ingests business documents (txt, docx, pdf), extracts
knowledge items from them, and answers questions grounded in that
knowledge. Every document and knowledge item belongs to a tenant;
tenants never see each other's data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&tenantFlag, "tenant", "t", "default", "tenant the command operates on")
}

// SetServices injects the driving ports the commands call.
// Must run before Execute.
func SetServices(
	ingest driving.IngestService,
	query driving.QueryService,
	settings driving.SettingsService,
	registry driven.ExtractorRegistry,
) {
	ingestService = ingest
	queryService = query
	settingsService = settings
	extractorReg = registry
}

// SetVersion overrides the build version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
