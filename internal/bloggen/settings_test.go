package bloggen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", settings.MaxTokens)
	}
	if settings.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", settings.Temperature)
	}
	if settings.TopicLimit != 10 {
		t.Errorf("TopicLimit = %d, want 10", settings.TopicLimit)
	}
	if settings.Model == "" {
		t.Error("Model must have a default")
	}
}

func TestLoadSettings_EmptyPathReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("got %+v, want defaults", settings)
	}
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloggen.yaml")
	content := "model: gpt-4o-mini\ntemperature: 0.3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", settings.Model)
	}
	if settings.Temperature != 0.3 {
		t.Errorf("Temperature = %v", settings.Temperature)
	}
	if settings.MaxTokens != 2000 {
		t.Errorf("MaxTokens should keep default, got %d", settings.MaxTokens)
	}
}

func TestLoadSettings_MissingFileErrors(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing settings file")
	}
}
