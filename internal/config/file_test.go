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
	path := filepath.Join(t.TempDir(), "clockface.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermUserRW))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, "language: fr\n")

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultRadius, *f.Radius)
	assert.Equal(t, "fr", f.Language)
	assert.Equal(t, DefaultLogLevel, f.LogLevel)
	require.NotNil(t, f.Server.Enabled)
	assert.True(t, *f.Server.Enabled)
	assert.Equal(t, DefaultPort, f.PortString())
}

func TestLoadFile_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
radius: 200
center_x: 10
center_y: -5
log_level: debug
server:
  enabled: false
  port: 9000
`)

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 200.0, *f.Radius)
	assert.Equal(t, 10.0, f.CenterX)
	assert.Equal(t, -5.0, f.CenterY)
	assert.Equal(t, "debug", f.LogLevel)
	require.NotNil(t, f.Server.Enabled)
	assert.False(t, *f.Server.Enabled, "explicit false must not be replaced by the default")
	assert.Equal(t, 9000, *f.Server.Port)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "radius: 100\n")
	t.Setenv(EnvRadius, "250")
	t.Setenv(EnvPort, "8123")

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, *f.Radius)
	assert.Equal(t, 8123, *f.Server.Port)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{name: "Malformed YAML", content: "radius: [", wantErr: ErrConfigParse},
		{name: "Radius too small", content: "radius: 5", wantErr: ErrRadiusRange},
		{name: "Explicit zero radius", content: "radius: 0", wantErr: ErrRadiusRange},
		{name: "Explicit zero port", content: "server:\n  port: 0", wantErr: ErrPortRange},
		{name: "Port out of range", content: "server:\n  port: 70000", wantErr: ErrPortRange},
		{name: "Unknown language", content: "language: de", wantErr: ErrLanguage},
		{name: "Bad radius env", content: "", env: map[string]string{EnvRadius: "big"}, wantErr: ErrConfigEnv},
		{name: "Bad port env", content: "", env: map[string]string{EnvPort: "http"}, wantErr: ErrConfigEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrConfigRead)
}
