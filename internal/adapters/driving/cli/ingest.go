package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Ingest documents into the knowledge base",
	Long: `Reads one or more files, extracts their text, and stores the
resulting knowledge items for the tenant. Supported formats are plain
text (.txt), Word documents (.docx) and PDFs (.pdf).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := context.Background()
	var failed int

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			cmd.PrintErrf("  %s: %v\n", path, err)
			failed++
			continue
		}

		filename := filepath.Base(path)
		doc, err := ingestService.Ingest(ctx, tenantFlag, filename, content)
		if err != nil {
			cmd.PrintErrf("  %s: %v\n", filename, ingestErrorMessage(err))
			failed++
			continue
		}

		cmd.Printf("  %s: document %s (%s", filename, doc.ID, doc.Format)
		if doc.Metadata.Title != "" {
			cmd.Printf(", %q", doc.Metadata.Title)
		}
		cmd.Println(")")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// ingestErrorMessage maps domain errors to user-facing wording.
func ingestErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "unsupported file format (expected .txt, .docx or .pdf)"
	case errors.Is(err, domain.ErrExtraction):
		return fmt.Sprintf("could not extract text: %v", err)
	default:
		return err.Error()
	}
}
