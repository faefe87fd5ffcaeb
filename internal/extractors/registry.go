package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction by file extension.
type Registry struct {
	mu          sync.RWMutex
	byExtension map[string]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byExtension: make(map[string]driven.Extractor),
	}
}

// Register adds an extractor to the registry. A later registration for
// the same extension replaces the earlier one.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range extractor.SupportedExtensions() {
		r.byExtension[strings.ToLower(ext)] = extractor
	}
}

// FormatFor resolves the format for a filename without extracting.
// An unrecognised extension returns domain.ErrUnsupportedFormat.
func (r *Registry) FormatFor(filename string) (domain.Format, error) {
	extractor, err := r.lookup(filename)
	if err != nil {
		return "", err
	}
	return extractor.Format(), nil
}

// Extract converts a raw document using the extractor registered for
// its extension. The extension check happens before any extraction
// attempt, so unknown formats are rejected without touching the bytes.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) (string, domain.Format, error) {
	if raw == nil {
		return "", "", domain.ErrInvalidInput
	}

	extractor, err := r.lookup(raw.Filename)
	if err != nil {
		return "", "", err
	}

	logger.Debug("Extracting %s as %s", raw.Filename, extractor.Format())

	content, err := extractor.Extract(ctx, raw)
	if err != nil {
		return "", extractor.Format(), err
	}

	return content, extractor.Format(), nil
}

// SupportedExtensions returns all registered extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// lookup finds the extractor for a filename's extension.
func (r *Registry) lookup(filename string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", domain.ErrUnsupportedFormat, filename)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	extractor, ok := r.byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return extractor, nil
}
