package cribl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings hold the connection parameters for one Cribl Cloud instance.
type Settings struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token,omitempty"`
}

// LoadSettings reads ~/.cribl-explorer/config.yaml if present, then applies
// the CRIBL_BASE_URL and CRIBL_TOKEN environment overrides. A missing
// config file is not an error; a malformed one is.
func LoadSettings() (*Settings, error) {
	s := &Settings{}
	path := settingsPath()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("CRIBL_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("CRIBL_TOKEN"); v != "" {
		s.Token = v
	}
	return s, nil
}

// SaveSettings writes the settings file. Mode 0600 since it may hold a token.
func SaveSettings(s *Settings) error {
	path := settingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks that the settings are complete enough to build a client.
func (s *Settings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://")
	}
	if s.Token == "" {
		return fmt.Errorf("bearer token is required")
	}
	return nil
}

func settingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cribl-explorer", "config.yaml")
}
