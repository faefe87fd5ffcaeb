package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var (
	queryAnswer bool
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Query the tenant's knowledge base",
	Long: `Ranks the tenant's knowledge items against the question and prints
the top matches. With --answer, the matches are handed to the configured
text generator for a natural-language reply grounded in them.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryAnswer, "answer", "a", false, "generate a natural-language answer")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := args[0]

	if queryService == nil {
		return errors.New("query service not configured")
	}

	ctx := context.Background()

	if queryAnswer {
		answer, response, err := queryService.Answer(ctx, tenantFlag, question)
		if err != nil {
			if errors.Is(err, domain.ErrGeneratorUnavailable) {
				return errors.New("no generator configured; enable one with 'groundkit config generator'")
			}
			return fmt.Errorf("answer failed: %w", err)
		}

		cmd.Println(answer)
		cmd.Println()
		cmd.Printf("Grounded in %d knowledge items (confidence %.2f)\n",
			len(response.Items), float64(response.Confidence))
		return nil
	}

	response, err := queryService.Query(ctx, tenantFlag, question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, response)
	}
	return outputQueryTable(cmd, response)
}

func outputQueryJSON(cmd *cobra.Command, response *domain.ContextualResponse) error {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, response *domain.ContextualResponse) error {
	if len(response.Items) == 0 {
		cmd.Printf("No results: %s\n", response.Reasoning)
		return nil
	}

	cmd.Printf("%s (confidence %.2f)\n", response.Reasoning, float64(response.Confidence))
	cmd.Println()
	for i := range response.Items {
		item := &response.Items[i]
		cmd.Printf("  [%d] %s (%s, %.2f)\n", i+1, item.Content, item.Category, float64(item.Confidence))
		if item.Context != "" {
			cmd.Printf("      Source: %s\n", item.Context)
		}
		cmd.Println()
	}

	return nil
}
