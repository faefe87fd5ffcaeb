package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all of the tenant's documents and knowledge",
	Long: `Removes every document and knowledge item owned by the tenant.
This cannot be undone. Requires --yes to confirm.`,
	Args: cobra.NoArgs,
	RunE: runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "confirm the wipe")
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if !wipeYes {
		return fmt.Errorf("refusing to wipe tenant %q without --yes", tenantFlag)
	}

	if err := queryService.Wipe(context.Background(), tenantFlag); err != nil {
		return fmt.Errorf("wipe failed: %w", err)
	}

	cmd.Printf("Wiped all knowledge for tenant %q.\n", tenantFlag)
	return nil
}
