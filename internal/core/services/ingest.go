package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/groundkit/internal/analysis"
	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/ports/driving"
	"github.com/custodia-labs/groundkit/internal/knowledge"
	"github.com/custodia-labs/groundkit/internal/logger"
	"github.com/custodia-labs/groundkit/internal/segmenter"
)

// Ensure IngestOrchestrator implements the interface.
var _ driving.IngestService = (*IngestOrchestrator)(nil)

// Default configuration values.
const (
	// DefaultExtractWorkers bounds concurrent extraction jobs.
	DefaultExtractWorkers = 4

	// DefaultExtractTimeout is the per-document extraction deadline.
	DefaultExtractTimeout = 60 * time.Second
)

// IngestConfig holds configuration for the ingest orchestrator.
type IngestConfig struct {
	// ExtractWorkers bounds how many extractions run at once
	// (default: 4).
	ExtractWorkers int

	// ExtractTimeout is the per-document extraction deadline
	// (default: 60s).
	ExtractTimeout time.Duration
}

// IngestOrchestrator coordinates the document ingestion pipeline:
// extraction, metadata analysis, segmentation, knowledge extraction
// and storage. Failures are all-or-nothing: an error leaves no
// document and no items behind.
type IngestOrchestrator struct {
	registry  driven.ExtractorRegistry
	store     driven.KnowledgeStore
	extractor *knowledge.Extractor

	// slots bounds concurrent extraction jobs.
	slots   chan struct{}
	timeout time.Duration
}

// NewIngestOrchestrator creates a new ingest orchestrator.
func NewIngestOrchestrator(
	registry driven.ExtractorRegistry,
	store driven.KnowledgeStore,
	cfg IngestConfig,
) *IngestOrchestrator {
	if cfg.ExtractWorkers <= 0 {
		cfg.ExtractWorkers = DefaultExtractWorkers
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = DefaultExtractTimeout
	}

	return &IngestOrchestrator{
		registry:  registry,
		store:     store,
		extractor: knowledge.New(),
		slots:     make(chan struct{}, cfg.ExtractWorkers),
		timeout:   cfg.ExtractTimeout,
	}
}

// Ingest runs the full pipeline for one uploaded document.
//
// Steps: extract text, analyse metadata, segment, extract knowledge
// items, then persist document and items. Extraction runs under a
// bounded worker slot with a per-job deadline; a timeout or cancel
// surfaces as a typed extraction failure.
func (o *IngestOrchestrator) Ingest(
	ctx context.Context,
	tenantID, filename string,
	content []byte,
) (*domain.Document, error) {
	if tenantID == "" || strings.TrimSpace(filename) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(content) == 0 {
		return nil, domain.ErrInvalidInput
	}

	raw := &domain.RawDocument{
		TenantID: tenantID,
		Filename: filename,
		Content:  content,
	}

	logger.Debug("Ingesting %s for tenant %s", filename, tenantID)

	// 1. EXTRACT TEXT (bounded, with per-job deadline)
	text, format, err := o.extract(ctx, raw)
	if err != nil {
		return nil, err
	}

	// 2. ANALYSE METADATA
	metadata := analysis.Analyze(text, filename, int64(len(content)))

	doc := &domain.Document{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Filename:    filename,
		Format:      format,
		Content:     text,
		Metadata:    metadata,
		Status:      domain.StatusCompleted,
		ProcessedAt: time.Now(),
	}

	// 3. SEGMENT
	segments := segmenter.Segment(text)

	// 4. EXTRACT KNOWLEDGE ITEMS
	items := o.extractor.ExtractItems(doc, segments)

	// 5. PERSIST (document first so items never reference a missing one)
	if err := o.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	if err := o.store.SaveItems(ctx, items); err != nil {
		return nil, fmt.Errorf("save knowledge items: %w", err)
	}

	logger.Info("Ingested %s: %d segments, %d knowledge items", filename, len(segments), len(items))
	return doc, nil
}

// ListDocuments returns all of a tenant's ingested documents.
func (o *IngestOrchestrator) ListDocuments(ctx context.Context, tenantID string) ([]domain.Document, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	return o.store.ListDocuments(ctx, tenantID)
}

// GetDocument retrieves one of a tenant's documents by ID.
func (o *IngestOrchestrator) GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	if tenantID == "" || documentID == "" {
		return nil, domain.ErrInvalidInput
	}
	return o.store.GetDocument(ctx, tenantID, documentID)
}

// extract runs the registry extraction inside a worker slot with the
// configured deadline.
func (o *IngestOrchestrator) extract(
	ctx context.Context,
	raw *domain.RawDocument,
) (string, domain.Format, error) {
	select {
	case o.slots <- struct{}{}:
		defer func() { <-o.slots }()
	case <-ctx.Done():
		format, _ := o.registry.FormatFor(raw.Filename)
		return "", "", domain.NewExtractionError(format, raw.Filename, ctx.Err())
	}

	jobCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	text, format, err := o.registry.Extract(jobCtx, raw)
	if err != nil {
		if jobCtx.Err() != nil && !isExtractionError(err) {
			return "", "", domain.NewExtractionError(format, raw.Filename, jobCtx.Err())
		}
		return "", "", err
	}
	return text, format, nil
}

// isExtractionError reports whether err already carries extraction
// typing, so the deadline path does not double-wrap.
func isExtractionError(err error) bool {
	return errors.Is(err, domain.ErrExtraction)
}
