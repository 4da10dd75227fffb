package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/DoorCard/internal/model"
)

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), config)
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	want := model.AppConfig{
		BusyFile:         "/tmp/busy.csv",
		MaxAttempts:      500,
		DefaultVerbosity: 2,
	}
	require.NoError(t, SaveAppConfig(path, want))

	got, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadAppConfig_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}

func TestSaveAppConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	require.NoError(t, SaveAppConfig(path, model.DefaultAppConfig()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestDefaultAppConfig(t *testing.T) {
	config := model.DefaultAppConfig()
	assert.Equal(t, 100000, config.MaxAttempts)
	assert.Equal(t, 0, config.DefaultVerbosity)
	assert.Empty(t, config.BusyFile)
}
