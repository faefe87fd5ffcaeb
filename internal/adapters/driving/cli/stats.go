package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the tenant's knowledge base",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	stats, err := queryService.Stats(context.Background(), tenantFlag)
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	cmd.Printf("Knowledge base for tenant %q:\n", tenantFlag)
	cmd.Printf("  Documents:        %d\n", stats.DocumentCount)
	cmd.Printf("  Knowledge items:  %d\n", stats.ItemCount)
	cmd.Printf("  Mean confidence:  %.2f\n", float64(stats.MeanConfidence))

	if len(stats.ByCategory) > 0 {
		cmd.Println("  By category:")
		// Stable order: iterate the known categories, not the map.
		for _, category := range domain.Categories {
			if count, ok := stats.ByCategory[category]; ok {
				cmd.Printf("    %-12s %d\n", category, count)
			}
		}
	}

	if len(stats.TopItems) > 0 {
		cmd.Println("  Most used:")
		for _, item := range stats.TopItems {
			cmd.Printf("    %3dx  %s\n", item.UsageCount, item.Preview)
		}
	}

	return nil
}
