package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "indent: \"\\t\"\nmetrics_file: out/stepc.prom\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Indent)
	assert.Equal(t, "warn", cfg.LogLevel, "absent keys keep defaults")
	assert.Equal(t, "out/stepc.prom", cfg.MetricsFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Unknown key", "colour: red\n", "invalid config"},
		{"Wrong type", "indent: [1, 2]\n", "invalid config"},
		{"Bad indent", "indent: \"->\"\n", "indent must contain only spaces and tabs"},
		{"Malformed YAML", "indent: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}
