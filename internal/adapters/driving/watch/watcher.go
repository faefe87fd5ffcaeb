package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/ports/driving"
	"github.com/custodia-labs/groundkit/internal/logger"
)

const (
	// settleDelay gives editors and copy tools time to finish writing
	// before the file is read.
	settleDelay = 100 * time.Millisecond

	// dedupeWindow suppresses repeat events for the same path. A single
	// file drop typically fires both a Create and a Write event.
	dedupeWindow = 500 * time.Millisecond
)

// Watcher ingests files dropped into a directory. Each created or
// modified file with a supported extension is read and handed to the
// ingest service under the configured tenant, throttled by a token
// bucket so a bulk copy does not saturate the pipeline.
type Watcher struct {
	service    driving.IngestService
	tenantID   string
	dir        string
	limiter    *rate.Limiter
	extensions map[string]struct{}

	mu       sync.Mutex
	closed   bool
	watcher  *fsnotify.Watcher
	lastSeen map[string]time.Time
}

// New creates a Watcher for the directory named in settings.
// The registry determines which file extensions are ingested;
// everything else is ignored.
func New(service driving.IngestService, registry driven.ExtractorRegistry, settings domain.WatchSettings) (*Watcher, error) {
	if settings.TenantID == "" {
		return nil, fmt.Errorf("watch tenant: %w", domain.ErrInvalidInput)
	}

	info, err := os.Stat(settings.Dir)
	if err != nil {
		return nil, fmt.Errorf("watch dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch dir %s: not a directory: %w", settings.Dir, domain.ErrInvalidInput)
	}

	eps := settings.EventsPerSecond
	if eps <= 0 {
		eps = domain.DefaultAppSettings().Watch.EventsPerSecond
	}
	burst := settings.Burst
	if burst <= 0 {
		burst = domain.DefaultAppSettings().Watch.Burst
	}

	extensions := make(map[string]struct{})
	for _, ext := range registry.SupportedExtensions() {
		extensions[ext] = struct{}{}
	}

	return &Watcher{
		service:    service,
		tenantID:   settings.TenantID,
		dir:        settings.Dir,
		limiter:    rate.NewLimiter(rate.Limit(eps), burst),
		extensions: extensions,
		lastSeen:   make(map[string]time.Time),
	}, nil
}

// Run watches the directory until the context is cancelled or the
// watcher is closed. It blocks; callers run it in a goroutine when
// they need to keep working.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("watcher is closed")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("create watcher: %w", err)
	}
	w.watcher = fsWatcher
	w.mu.Unlock()

	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	logger.Info("watching %s for tenant %s", w.dir, w.tenantID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.wants(event) {
				continue
			}
			if err := w.ingest(ctx, event.Name); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("watch ingest %s: %v", filepath.Base(event.Name), err)
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// wants reports whether an event should trigger ingestion: a create or
// write of a supported file, not seen within the dedupe window.
func (w *Watcher) wants(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if _, ok := w.extensions[ext]; !ok {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if seen, ok := w.lastSeen[event.Name]; ok && now.Sub(seen) < dedupeWindow {
		return false
	}
	w.lastSeen[event.Name] = now
	return true
}

func (w *Watcher) ingest(ctx context.Context, path string) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	// Let the writer finish before reading.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(settleDelay):
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	filename := filepath.Base(path)
	doc, err := w.service.Ingest(ctx, w.tenantID, filename, content)
	if err != nil {
		return err
	}

	logger.Info("ingested %s as document %s", filename, doc.ID)
	return nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
