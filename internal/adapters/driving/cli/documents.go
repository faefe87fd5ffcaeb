package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/groundkit/internal/core/domain"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Inspect the tenant's ingested documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show one document's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsGet,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsGetCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	docs, err := ingestService.ListDocuments(context.Background(), tenantFlag)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents for tenant %q.\n", tenantFlag)
		return nil
	}

	cmd.Printf("Documents for tenant %q:\n\n", tenantFlag)
	for i := range docs {
		doc := &docs[i]
		cmd.Printf("  %s  %s (%s, %d words)\n",
			doc.ID, doc.Filename, doc.Format, doc.Metadata.WordCount)
		if doc.Metadata.Title != "" {
			cmd.Printf("      Title: %s\n", doc.Metadata.Title)
		}
	}
	return nil
}

func runDocumentsGet(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	doc, err := ingestService.GetDocument(context.Background(), tenantFlag, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("document %s not found for tenant %q", args[0], tenantFlag)
		}
		return fmt.Errorf("get document: %w", err)
	}

	cmd.Printf("Document: %s\n", doc.ID)
	cmd.Printf("  Filename:  %s\n", doc.Filename)
	cmd.Printf("  Format:    %s\n", doc.Format)
	cmd.Printf("  Status:    %s\n", doc.Status)
	cmd.Printf("  Processed: %s\n", doc.ProcessedAt.Format("2006-01-02 15:04:05"))
	if doc.Metadata.Title != "" {
		cmd.Printf("  Title:     %s\n", doc.Metadata.Title)
	}
	if doc.Metadata.Author != "" {
		cmd.Printf("  Author:    %s\n", doc.Metadata.Author)
	}
	cmd.Printf("  Words:     %d\n", doc.Metadata.WordCount)
	if len(doc.Metadata.Topics) > 0 {
		cmd.Printf("  Topics:    %s\n", strings.Join(doc.Metadata.Topics, ", "))
	}
	if len(doc.Metadata.Keywords) > 0 {
		cmd.Printf("  Keywords:  %s\n", strings.Join(doc.Metadata.Keywords, ", "))
	}
	return nil
}
