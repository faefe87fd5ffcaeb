package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/groundkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/groundkit/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	// Verify defaults
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.Equal(t, defaults.Ingest.Workers, settings.Ingest.Workers)
	assert.Equal(t, defaults.Ingest.Timeout, settings.Ingest.Timeout)
	assert.Equal(t, defaults.Generator.Enabled, settings.Generator.Enabled)
	assert.Equal(t, defaults.Generator.Model, settings.Generator.Model)
	assert.Equal(t, defaults.Watch.EventsPerSecond, settings.Watch.EventsPerSecond)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "memory")
	_ = store.Set("ingest.workers", 8)
	_ = store.Set("ingest.timeout", "30s")
	_ = store.Set("generator.enabled", true)
	_ = store.Set("generator.model", "mistral")
	_ = store.Set("watch.tenant", "acme")
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, 8, settings.Ingest.Workers)
	assert.Equal(t, 30*time.Second, settings.Ingest.Timeout)
	assert.True(t, settings.Generator.Enabled)
	assert.Equal(t, "mistral", settings.Generator.Model)
	assert.Equal(t, "acme", settings.Watch.TenantID)
}

func TestSettingsService_Get_InvalidValuesFallBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "cassandra")
	_ = store.Set("ingest.timeout", "not-a-duration")
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.Equal(t, defaults.Ingest.Timeout, settings.Ingest.Timeout)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Storage.Backend = domain.StorageMemory
	settings.Ingest.Workers = 2
	settings.Generator.Enabled = true
	settings.Watch.TenantID = "acme"
	settings.Watch.Dir = "/tmp/drop"

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageMemory, got.Storage.Backend)
	assert.Equal(t, 2, got.Ingest.Workers)
	assert.True(t, got.Generator.Enabled)
	assert.Equal(t, "acme", got.Watch.TenantID)
	assert.Equal(t, "/tmp/drop", got.Watch.Dir)
}

func TestSettingsService_SetStorageBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStorageBackend(domain.StorageMemory))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)

	assert.Error(t, service.SetStorageBackend("cassandra"))
}

func TestSettingsService_SetGenerator(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetGenerator(true, "http://localhost:9999", "mistral"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.True(t, settings.Generator.Enabled)
	assert.Equal(t, "http://localhost:9999", settings.Generator.BaseURL)
	assert.Equal(t, "mistral", settings.Generator.Model)

	// Empty arguments keep the previous values.
	require.NoError(t, service.SetGenerator(false, "", ""))
	settings, err = service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Generator.Enabled)
	assert.Equal(t, "http://localhost:9999", settings.Generator.BaseURL)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	assert.NoError(t, service.Validate())

	_ = store.Set("ingest.workers", -1)
	assert.Error(t, service.Validate())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	defaults := service.GetDefaults()
	assert.Equal(t, domain.StorageSQLite, defaults.Storage.Backend)
	assert.Equal(t, 4, defaults.Ingest.Workers)
}
