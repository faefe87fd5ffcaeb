package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyIngestWorkers  = "ingest.workers"
	keyIngestTimeout  = "ingest.timeout"
	keyGenEnabled     = "generator.enabled"
	keyGenBaseURL     = "generator.base_url"
	keyGenModel       = "generator.model"
	keyWatchTenant    = "watch.tenant"
	keyWatchDir       = "watch.dir"
	keyWatchRate      = "watch.events_per_second"
	keyWatchBurst     = "watch.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // No default - empty means the standard data dir
		},
		Ingest: domain.IngestSettings{
			Workers: s.getInt(keyIngestWorkers, defaults.Ingest.Workers),
			Timeout: s.getDuration(keyIngestTimeout, defaults.Ingest.Timeout),
		},
		Generator: domain.GeneratorSettings{
			Enabled: s.getBool(keyGenEnabled, defaults.Generator.Enabled),
			BaseURL: s.getString(keyGenBaseURL, defaults.Generator.BaseURL),
			Model:   s.getString(keyGenModel, defaults.Generator.Model),
		},
		Watch: domain.WatchSettings{
			TenantID:        s.configStore.GetString(keyWatchTenant),
			Dir:             s.configStore.GetString(keyWatchDir),
			EventsPerSecond: s.getRate(defaults.Watch.EventsPerSecond),
			Burst:           s.getInt(keyWatchBurst, defaults.Watch.Burst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyStorageBackend, string(settings.Storage.Backend)); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}

	if err := s.configStore.Set(keyIngestWorkers, settings.Ingest.Workers); err != nil {
		return fmt.Errorf("save ingest workers: %w", err)
	}
	if err := s.configStore.Set(keyIngestTimeout, settings.Ingest.Timeout.String()); err != nil {
		return fmt.Errorf("save ingest timeout: %w", err)
	}

	if err := s.configStore.Set(keyGenEnabled, settings.Generator.Enabled); err != nil {
		return fmt.Errorf("save generator enabled: %w", err)
	}
	if err := s.configStore.Set(keyGenBaseURL, settings.Generator.BaseURL); err != nil {
		return fmt.Errorf("save generator base_url: %w", err)
	}
	if err := s.configStore.Set(keyGenModel, settings.Generator.Model); err != nil {
		return fmt.Errorf("save generator model: %w", err)
	}

	if err := s.configStore.Set(keyWatchTenant, settings.Watch.TenantID); err != nil {
		return fmt.Errorf("save watch tenant: %w", err)
	}
	if err := s.configStore.Set(keyWatchDir, settings.Watch.Dir); err != nil {
		return fmt.Errorf("save watch dir: %w", err)
	}
	if err := s.configStore.Set(keyWatchRate, settings.Watch.EventsPerSecond); err != nil {
		return fmt.Errorf("save watch rate: %w", err)
	}
	if err := s.configStore.Set(keyWatchBurst, settings.Watch.Burst); err != nil {
		return fmt.Errorf("save watch burst: %w", err)
	}

	return nil
}

// SetStorageBackend updates the knowledge store backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Storage.Backend = backend
	return s.Save(settings)
}

// SetGenerator configures the answer generator.
func (s *SettingsService) SetGenerator(enabled bool, baseURL, model string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Generator.Enabled = enabled
	if baseURL != "" {
		settings.Generator.BaseURL = baseURL
	}
	if model != "" {
		settings.Generator.Model = model
	}
	return s.Save(settings)
}

// Validate checks if current settings are consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", settings.Storage.Backend)
	}
	if settings.Ingest.Workers <= 0 {
		return fmt.Errorf("ingest workers must be positive, got %d", settings.Ingest.Workers)
	}
	if settings.Ingest.Timeout <= 0 {
		return fmt.Errorf("ingest timeout must be positive, got %s", settings.Ingest.Timeout)
	}
	if settings.Generator.Enabled && settings.Generator.BaseURL == "" {
		return fmt.Errorf("generator enabled but no base URL configured")
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getRate(defaultVal float64) float64 {
	val, exists := s.configStore.Get(keyWatchRate)
	if !exists {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		if v > 0 {
			return v
		}
	case int64:
		if v > 0 {
			return float64(v)
		}
	}
	return defaultVal
}
