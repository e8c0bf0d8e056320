package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	assert.Equal(t, CurrentSettingsVersion, cfg.Version)
	assert.Equal(t, "clean-stack", cfg.Design)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Empty(t, cfg.ExternalIPURL)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.Quiet)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)

	content := `
version: 1
design: plain
probe_timeout: 2s
external_ip_url: https://example.test/ip
output:
  color: never
  quiet: true
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "plain", cfg.Design)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, "https://example.test/ip", cfg.ExternalIPURL)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.True(t, cfg.Output.Quiet)
}

func TestLoadMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)

	err := os.WriteFile(path, []byte("output:\n  quiet: true\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "clean-stack", cfg.Design)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.True(t, cfg.Output.Quiet)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.conkygen.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Settings file not found")
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantErr  bool
		wantPath bool
	}{
		{
			name: "explicit path exists",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "custom.yaml")
				err := os.WriteFile(path, []byte("version: 1"), 0644)
				require.NoError(t, err)
				return path
			},
			wantPath: true,
		},
		{
			name: "explicit path not found",
			setup: func(t *testing.T) string {
				return "/nonexistent/config.yaml"
			},
			wantErr: true,
		},
		{
			name: "current directory has settings",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				err := os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("version: 1"), 0644)
				require.NoError(t, err)
				t.Chdir(dir)
				return ""
			},
			wantPath: true,
		},
		{
			name: "global settings under home",
			setup: func(t *testing.T) string {
				home := t.TempDir()
				t.Setenv("HOME", home)
				t.Chdir(t.TempDir())

				globalDir := filepath.Join(home, GlobalSettingsDir)
				require.NoError(t, os.MkdirAll(globalDir, 0755))
				err := os.WriteFile(filepath.Join(globalDir, GlobalSettingsFile), []byte("version: 1"), 0644)
				require.NoError(t, err)
				return ""
			},
			wantPath: true,
		},
		{
			name: "nothing anywhere",
			setup: func(t *testing.T) string {
				t.Setenv("HOME", t.TempDir())
				t.Chdir(t.TempDir())
				return ""
			},
			wantPath: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explicit := tt.setup(t)

			path, err := Find(explicit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantPath {
				assert.NotEmpty(t, path)
			} else {
				assert.Empty(t, path)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
}

func TestLoadOrDefaultExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := os.WriteFile(path, []byte("design: plain\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Design)
}
