package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// previewLength truncates item content for stats display.
const previewLength = 80

// topItemCount is how many most-used items stats reports.
const topItemCount = 5

// partition holds one tenant's documents and items behind its own
// lock, so one tenant's ingest never blocks another tenant's reads.
type partition struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	items     []domain.KnowledgeItem
	itemIndex map[string]int
}

// KnowledgeStore is an in-memory, tenant-partitioned implementation of
// driven.KnowledgeStore. Isolation is by partition key (tenant id);
// there is no cross-tenant locking.
type KnowledgeStore struct {
	mu         sync.RWMutex
	partitions map[string]*partition
}

// NewKnowledgeStore creates a new in-memory knowledge store.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{
		partitions: make(map[string]*partition),
	}
}

// partitionFor returns the tenant's partition, creating it on first write.
func (s *KnowledgeStore) partitionFor(tenantID string) *partition {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.partitions[tenantID]
	if !ok {
		p = &partition{
			documents: make(map[string]domain.Document),
			itemIndex: make(map[string]int),
		}
		s.partitions[tenantID] = p
	}
	return p
}

// peekPartition returns the tenant's partition without creating one.
// A tenant that was never written behaves as an empty tenant.
func (s *KnowledgeStore) peekPartition(tenantID string) *partition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.partitions[tenantID]
}

// SaveDocument stores a completed document.
func (s *KnowledgeStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.TenantID == "" {
		return domain.ErrInvalidInput
	}

	p := s.partitionFor(doc.TenantID)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.documents[doc.ID] = *doc
	return nil
}

// SaveItems appends knowledge items for a tenant. Append-only: no
// dedup against prior ingests of the same content.
func (s *KnowledgeStore) SaveItems(_ context.Context, items []domain.KnowledgeItem) error {
	if len(items) == 0 {
		return nil
	}
	tenantID := items[0].TenantID
	if tenantID == "" {
		return domain.ErrInvalidInput
	}

	p := s.partitionFor(tenantID)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range items {
		p.itemIndex[item.ID] = len(p.items)
		p.items = append(p.items, item)
	}
	return nil
}

// GetDocument retrieves one of the tenant's documents by ID.
func (s *KnowledgeStore) GetDocument(_ context.Context, tenantID, documentID string) (*domain.Document, error) {
	p := s.peekPartition(tenantID)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	doc, ok := p.documents[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns all documents owned by the tenant.
func (s *KnowledgeStore) ListDocuments(_ context.Context, tenantID string) ([]domain.Document, error) {
	p := s.peekPartition(tenantID)
	if p == nil {
		return nil, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	docs := make([]domain.Document, 0, len(p.documents))
	for id := range p.documents {
		docs = append(docs, p.documents[id])
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ProcessedAt.Before(docs[j].ProcessedAt)
	})
	return docs, nil
}

// ListItems returns copies of all knowledge items owned by the tenant.
func (s *KnowledgeStore) ListItems(_ context.Context, tenantID string) ([]domain.KnowledgeItem, error) {
	p := s.peekPartition(tenantID)
	if p == nil {
		return nil, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	items := make([]domain.KnowledgeItem, len(p.items))
	copy(items, p.items)
	return items, nil
}

// RecordUsage increments usage counts and sets last-used times for the
// given items. Bumps are serialised under the partition write lock, so
// counts are exact under concurrent queries.
func (s *KnowledgeStore) RecordUsage(_ context.Context, tenantID string, itemIDs []string, usedAt time.Time) error {
	p := s.peekPartition(tenantID)
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range itemIDs {
		idx, ok := p.itemIndex[id]
		if !ok {
			continue
		}
		p.items[idx].UsageCount++
		used := usedAt
		p.items[idx].LastUsed = &used
	}
	return nil
}

// Stats summarises the tenant's knowledge base.
func (s *KnowledgeStore) Stats(_ context.Context, tenantID string) (*domain.KnowledgeStats, error) {
	stats := &domain.KnowledgeStats{
		ByCategory: make(map[domain.Category]int),
	}

	p := s.peekPartition(tenantID)
	if p == nil {
		return stats, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	stats.DocumentCount = len(p.documents)
	stats.ItemCount = len(p.items)

	var confidenceSum float64
	for i := range p.items {
		stats.ByCategory[p.items[i].Category]++
		confidenceSum += float64(p.items[i].Confidence)
	}
	if stats.ItemCount > 0 {
		stats.MeanConfidence = domain.NewConfidence(confidenceSum / float64(stats.ItemCount))
	}

	stats.TopItems = topUsedItems(p.items)
	return stats, nil
}

// Clear removes every document and knowledge item owned by the tenant.
func (s *KnowledgeStore) Clear(_ context.Context, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partitions, tenantID)
	return nil
}

// Close releases resources (no-op for memory store).
func (s *KnowledgeStore) Close() error {
	return nil
}

// topUsedItems returns usage summaries for the most-used items.
func topUsedItems(items []domain.KnowledgeItem) []domain.ItemUsage {
	used := make([]domain.KnowledgeItem, 0, len(items))
	for i := range items {
		if items[i].UsageCount > 0 {
			used = append(used, items[i])
		}
	}
	sort.Slice(used, func(i, j int) bool {
		return used[i].UsageCount > used[j].UsageCount
	})
	if len(used) > topItemCount {
		used = used[:topItemCount]
	}

	top := make([]domain.ItemUsage, len(used))
	for i, item := range used {
		preview := item.Content
		if len(preview) > previewLength {
			preview = preview[:previewLength] + "..."
		}
		top[i] = domain.ItemUsage{Preview: preview, UsageCount: item.UsageCount}
	}
	return top
}
