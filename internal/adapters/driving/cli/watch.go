package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/adapters/driving/watch"
	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var (
	watchRate  float64
	watchBurst int
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop folder and ingest new files",
	Long: `Watches a directory and ingests every supported file dropped into
it under the tenant. Ingestion is throttled so a bulk copy does not
saturate the pipeline. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&watchRate, "rate", 0, "max ingestions per second (0 uses the configured default)")
	watchCmd.Flags().IntVar(&watchBurst, "burst", 0, "throttle burst size (0 uses the configured default)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}
	if extractorReg == nil {
		return errors.New("extractor registry not configured")
	}

	settings := domain.WatchSettings{
		TenantID:        tenantFlag,
		Dir:             args[0],
		EventsPerSecond: watchRate,
		Burst:           watchBurst,
	}
	if settingsService != nil {
		if app, err := settingsService.Get(); err == nil {
			if settings.EventsPerSecond <= 0 {
				settings.EventsPerSecond = app.Watch.EventsPerSecond
			}
			if settings.Burst <= 0 {
				settings.Burst = app.Watch.Burst
			}
		}
	}

	watcher, err := watch.New(ingestService, extractorReg, settings)
	if err != nil {
		return fmt.Errorf("start watch: %w", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for tenant %q. Press Ctrl+C to stop.\n", args[0], tenantFlag)

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
