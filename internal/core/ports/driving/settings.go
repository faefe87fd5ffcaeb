package driving

import "github.com/custodia-labs/groundkit/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStorageBackend updates the knowledge store backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetGenerator configures the answer generator.
	SetGenerator(enabled bool, baseURL, model string) error

	// Validate checks if current settings are consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
