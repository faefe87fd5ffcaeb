package domain

import "time"

// StorageBackend selects where documents and knowledge items live.
type StorageBackend string

const (
	// StorageMemory keeps everything in process memory.
	StorageMemory StorageBackend = "memory"

	// StorageSQLite persists to a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid reports whether b is a known storage backend.
func (b StorageBackend) IsValid() bool {
	return b == StorageMemory || b == StorageSQLite
}

// StorageSettings configures the knowledge store backend.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// DataDir is where the sqlite backend keeps its database.
	// Empty means the default data directory.
	DataDir string
}

// IngestSettings configures the ingestion pipeline.
type IngestSettings struct {
	// Workers bounds concurrent extraction jobs.
	Workers int

	// Timeout is the per-document extraction deadline.
	Timeout time.Duration
}

// GeneratorSettings configures the optional answer generator.
type GeneratorSettings struct {
	// Enabled turns generated answers on.
	Enabled bool

	// BaseURL is the generation API endpoint.
	BaseURL string

	// Model is the generation model name.
	Model string
}

// WatchSettings configures the drop-folder watcher.
type WatchSettings struct {
	// TenantID is the tenant that owns watched uploads.
	TenantID string

	// Dir is the watched directory.
	Dir string

	// EventsPerSecond throttles how fast watched files are ingested.
	EventsPerSecond float64

	// Burst is the throttle burst size.
	Burst int
}

// AppSettings holds all user-configurable application settings.
type AppSettings struct {
	Storage   StorageSettings
	Ingest    IngestSettings
	Generator GeneratorSettings
	Watch     WatchSettings
}

// DefaultAppSettings returns the settings used before any configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Ingest: IngestSettings{
			Workers: 4,
			Timeout: 60 * time.Second,
		},
		Generator: GeneratorSettings{
			Enabled: false,
			BaseURL: "http://localhost:11434",
			Model:   "llama3.2",
		},
		Watch: WatchSettings{
			EventsPerSecond: 2,
			Burst:           4,
		},
	}
}
