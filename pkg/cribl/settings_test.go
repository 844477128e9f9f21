package cribl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CRIBL_BASE_URL", "")
	t.Setenv("CRIBL_TOKEN", "")
	return home
}

func TestLoadSettingsMissingFile(t *testing.T) {
	isolateHome(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestSettingsRoundTrip(t *testing.T) {
	home := isolateHome(t)

	in := &Settings{BaseURL: "https://main-acme.cribl.cloud", Token: "tok123"}
	require.NoError(t, SaveSettings(in))

	// Token-bearing file must not be world readable.
	info, err := os.Stat(filepath.Join(home, ".cribl-explorer", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	isolateHome(t)
	require.NoError(t, SaveSettings(&Settings{BaseURL: "https://file.example", Token: "file-token"}))

	t.Setenv("CRIBL_BASE_URL", "https://env.example")
	t.Setenv("CRIBL_TOKEN", "env-token")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", s.BaseURL)
	assert.Equal(t, "env-token", s.Token)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".cribl-explorer")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{"empty", Settings{}, "base URL is required"},
		{"bad scheme", Settings{BaseURL: "main.cribl.cloud", Token: "t"}, "must start with"},
		{"no token", Settings{BaseURL: "https://main.cribl.cloud"}, "token is required"},
		{"ok https", Settings{BaseURL: "https://main.cribl.cloud", Token: "t"}, ""},
		{"ok http", Settings{BaseURL: "http://localhost:9000", Token: "t"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
