package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "storage")
	assert.Contains(t, names, "generator")
}

func TestConfigShowCmd_PrintsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	output, err := execute(t, "config", "show")

	assert.NoError(t, err)
	assert.Contains(t, output, "[Storage]")
	assert.Contains(t, output, "Backend: sqlite")
	assert.Contains(t, output, "[Generator]")
	assert.Contains(t, output, "Enabled: no")
}

func TestConfigStorageCmd_SetsBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	output, err := execute(t, "config", "storage", "memory")

	assert.NoError(t, err)
	assert.Contains(t, output, "Storage backend set to memory")
	assert.Contains(t, output, "lost when the process exits")

	output, err = execute(t, "config", "show")
	assert.NoError(t, err)
	assert.Contains(t, output, "Backend: memory")
}

func TestConfigStorageCmd_RejectsUnknownBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "storage", "cassandra")

	assert.Error(t, err)
}

func TestConfigGeneratorCmd_EnablesWithDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	output, err := execute(t, "config", "generator")

	assert.NoError(t, err)
	assert.Contains(t, output, "Generator enabled")
	assert.Contains(t, output, "llama3.2")
}

func TestConfigGeneratorCmd_SetsModel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	output, err := execute(t, "config", "generator", "--model", "mistral")

	assert.NoError(t, err)
	assert.Contains(t, output, "mistral")
}

func TestConfigGeneratorCmd_Disables(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "generator")
	assert.NoError(t, err)

	output, err := execute(t, "config", "generator", "--disable")

	assert.NoError(t, err)
	assert.Contains(t, output, "Generator disabled")
}
