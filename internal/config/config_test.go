package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))

	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "labyrinth.db"), AppConfig.DatabasePath)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, "console", AppConfig.LogFormat)
	assert.Equal(t, 20.0, AppConfig.MatchThreshold)
	assert.Equal(t, 0, AppConfig.MaxResults)
	assert.Equal(t, "table", AppConfig.OutputFormat)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LABYRINTH_LOG_LEVEL", "debug")
	t.Setenv("LABYRINTH_MAX_RESULTS", "5")
	require.NoError(t, InitializeAt(t.TempDir()))

	assert.Equal(t, "debug", AppConfig.LogLevel)
	assert.Equal(t, 5, AppConfig.MaxResults)
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))

	require.NoError(t, Set("match_threshold", "35.5"))
	require.NoError(t, Set("output_format", "JSON"))
	assert.Equal(t, 35.5, AppConfig.MatchThreshold)
	assert.Equal(t, "json", AppConfig.OutputFormat)

	// reload from disk
	viper.Reset()
	require.NoError(t, InitializeAt(dir))
	assert.Equal(t, 35.5, AppConfig.MatchThreshold)
	assert.Equal(t, "json", Get("output_format"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"log_level", "warn", false},
		{"log_level", "loud", true},
		{"log_format", "JSON", false},
		{"match_threshold", "20", false},
		{"match_threshold", "abc", true},
		{"match_threshold", "150", true},
		{"max_results", "10", false},
		{"max_results", "-1", true},
		{"workers", "1.5", true},
		{"metrics_file", "/tmp/labyrinth.prom", false},
		{"openai_key", "sk-123", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := Validate(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidKeysSorted(t *testing.T) {
	got := ValidKeys()
	assert.Len(t, got, 8)
	assert.IsNonDecreasing(t, got)
	assert.Contains(t, got, "match_threshold")
}
