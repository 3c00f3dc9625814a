package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLogLevel keeps the terminal quiet unless something is wrong.
const DefaultLogLevel = "warn"

// Settings are the ambient knobs of the tool. The sampling parameters of a
// completion and the credential are deliberately not part of this: the token
// only ever comes from argv.
type Settings struct {
	LogLevel   string `yaml:"log_level"`
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
	Timeout    int    `yaml:"timeout"` // per-call timeout in seconds; 0 keeps the client default
}

// WithDefaultSettings returns the built-in settings.
func WithDefaultSettings() Settings {
	return Settings{
		LogLevel: DefaultLogLevel,
	}
}

// WithYamlFile layers an optional ghmodels.yml/ghmodels.yaml from the working
// directory over the defaults. A missing or unparsable file falls back to the
// defaults silently; settings are loaded before the logger is up.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	for _, name := range []string{"ghmodels.yml", "ghmodels.yaml"} {
		data, err := os.ReadFile(name)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return WithDefaultSettings()
		}
		break
	}

	return settings
}
