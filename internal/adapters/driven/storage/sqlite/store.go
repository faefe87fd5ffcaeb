package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/groundkit/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
)

// previewLength truncates item content for stats display.
const previewLength = 80

// topItemCount is how many most-used items stats reports.
const topItemCount = 5

// Store is a SQLite-backed knowledge store. A single database file
// holds all tenants; partitioning is enforced by scoping every query
// to a tenant id.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.KnowledgeStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.groundkit/data/knowledge.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".groundkit", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "knowledge.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveDocument stores a completed document.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.TenantID == "" {
		return domain.ErrInvalidInput
	}

	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, tenant_id, filename, format, content, metadata, status, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tenant_id = excluded.tenant_id,
			filename = excluded.filename,
			format = excluded.format,
			content = excluded.content,
			metadata = excluded.metadata,
			status = excluded.status,
			processed_at = excluded.processed_at
	`, doc.ID, doc.TenantID, doc.Filename, string(doc.Format), doc.Content,
		string(metadataJSON), string(doc.Status), doc.ProcessedAt)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// SaveItems appends knowledge items for a tenant.
func (s *Store) SaveItems(ctx context.Context, items []domain.KnowledgeItem) error {
	if len(items) == 0 {
		return nil
	}
	if items[0].TenantID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO knowledge_items
			(id, tenant_id, document_id, content, context, category, confidence, keywords, created_at, last_used, usage_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		keywordsJSON, err := json.Marshal(item.Keywords)
		if err != nil {
			return fmt.Errorf("marshalling keywords: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, item.ID, item.TenantID, item.DocumentID,
			item.Content, item.Context, string(item.Category), float64(item.Confidence),
			string(keywordsJSON), item.CreatedAt, nullTime(item.LastUsed), item.UsageCount); err != nil {
			return fmt.Errorf("saving knowledge item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetDocument retrieves one of the tenant's documents by ID.
func (s *Store) GetDocument(ctx context.Context, tenantID, documentID string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, filename, format, content, metadata, status, processed_at
		FROM documents WHERE tenant_id = ? AND id = ?
	`, tenantID, documentID)

	doc, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return doc, err
}

// ListDocuments returns all documents owned by the tenant.
func (s *Store) ListDocuments(ctx context.Context, tenantID string) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tenant_id, filename, format, content, metadata, status, processed_at
		FROM documents WHERE tenant_id = ?
		ORDER BY processed_at
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// ListItems returns all knowledge items owned by the tenant.
func (s *Store) ListItems(ctx context.Context, tenantID string) ([]domain.KnowledgeItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tenant_id, document_id, content, context, category, confidence, keywords, created_at, last_used, usage_count
		FROM knowledge_items WHERE tenant_id = ?
		ORDER BY created_at, id
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying knowledge items: %w", err)
	}
	defer rows.Close()

	var items []domain.KnowledgeItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating knowledge items: %w", err)
	}

	return items, nil
}

// RecordUsage increments usage counts and sets last-used times for the
// given items. Runs in a single transaction so concurrent bumps stay
// exact.
func (s *Store) RecordUsage(ctx context.Context, tenantID string, itemIDs []string, usedAt time.Time) error {
	if len(itemIDs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE knowledge_items SET usage_count = usage_count + 1, last_used = ?
		WHERE tenant_id = ? AND id = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, id := range itemIDs {
		if _, err := stmt.ExecContext(ctx, usedAt, tenantID, id); err != nil {
			return fmt.Errorf("recording usage: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Stats summarises the tenant's knowledge base.
func (s *Store) Stats(ctx context.Context, tenantID string) (*domain.KnowledgeStats, error) {
	stats := &domain.KnowledgeStats{
		ByCategory: make(map[domain.Category]int),
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE tenant_id = ?", tenantID)
	if err := row.Scan(&stats.DocumentCount); err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}

	row = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(confidence), 0)
		FROM knowledge_items WHERE tenant_id = ?
	`, tenantID)
	var meanConfidence float64
	if err := row.Scan(&stats.ItemCount, &meanConfidence); err != nil {
		return nil, fmt.Errorf("counting knowledge items: %w", err)
	}
	stats.MeanConfidence = domain.NewConfidence(meanConfidence)

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM knowledge_items
		WHERE tenant_id = ? GROUP BY category
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying category counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		stats.ByCategory[domain.Category(category)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}

	topRows, err := s.db.QueryContext(ctx, `
		SELECT content, usage_count FROM knowledge_items
		WHERE tenant_id = ? AND usage_count > 0
		ORDER BY usage_count DESC
		LIMIT ?
	`, tenantID, topItemCount)
	if err != nil {
		return nil, fmt.Errorf("querying top items: %w", err)
	}
	defer topRows.Close()

	for topRows.Next() {
		var usage domain.ItemUsage
		if err := topRows.Scan(&usage.Preview, &usage.UsageCount); err != nil {
			return nil, fmt.Errorf("scanning top item: %w", err)
		}
		if len(usage.Preview) > previewLength {
			usage.Preview = usage.Preview[:previewLength] + "..."
		}
		stats.TopItems = append(stats.TopItems, usage)
	}
	if err := topRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top items: %w", err)
	}

	return stats, nil
}

// Clear removes every document and knowledge item owned by the tenant.
func (s *Store) Clear(ctx context.Context, tenantID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE tenant_id = ?", tenantID); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM knowledge_items WHERE tenant_id = ?", tenantID); err != nil {
		return fmt.Errorf("clearing knowledge items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// scanFunc abstracts sql.Row.Scan and sql.Rows.Scan.
type scanFunc func(dest ...any) error

// scanDocument scans one document row.
func scanDocument(scan scanFunc) (*domain.Document, error) {
	var doc domain.Document
	var format, status, metadataJSON string

	if err := scan(&doc.ID, &doc.TenantID, &doc.Filename, &format, &doc.Content,
		&metadataJSON, &status, &doc.ProcessedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Format = domain.Format(format)
	doc.Status = domain.Status(status)

	if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshaling metadata: %w", err)
	}

	return &doc, nil
}

// scanItem scans one knowledge item row.
func scanItem(scan scanFunc) (*domain.KnowledgeItem, error) {
	var item domain.KnowledgeItem
	var category, keywordsJSON string
	var confidence float64
	var lastUsed sql.NullTime

	if err := scan(&item.ID, &item.TenantID, &item.DocumentID, &item.Content,
		&item.Context, &category, &confidence, &keywordsJSON,
		&item.CreatedAt, &lastUsed, &item.UsageCount); err != nil {
		return nil, fmt.Errorf("scanning knowledge item: %w", err)
	}

	item.Category = domain.Category(category)
	item.Confidence = domain.Confidence(confidence)
	if lastUsed.Valid {
		item.LastUsed = &lastUsed.Time
	}

	if err := json.Unmarshal([]byte(keywordsJSON), &item.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshaling keywords: %w", err)
	}

	return &item, nil
}

// nullTime converts an optional time to a driver-friendly value.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
