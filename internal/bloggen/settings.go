package bloggen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultModel       = "gpt-4.1-2025-04-14"
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
	defaultTopicLimit  = 10
)

// Settings tunes the generation call. Values map onto the completion request;
// TopicLimit bounds how many skills are considered per run.
type Settings struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	TopicLimit  int     `yaml:"topic_limit"`
}

func DefaultSettings() Settings {
	return Settings{
		Model:       defaultModel,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopicLimit:  defaultTopicLimit,
	}
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if settings.Model == "" {
		settings.Model = defaultModel
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = defaultMaxTokens
	}
	if settings.TopicLimit <= 0 {
		settings.TopicLimit = defaultTopicLimit
	}

	return settings, nil
}
