package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Classifier.AcceptThreshold != 0.70 {
		t.Errorf("expected AcceptThreshold=0.70, got %f", cfg.Classifier.AcceptThreshold)
	}
	if cfg.Classifier.RejectThreshold != 0.30 {
		t.Errorf("expected RejectThreshold=0.30, got %f", cfg.Classifier.RejectThreshold)
	}
	if cfg.Search.CacheSize != 256 {
		t.Errorf("expected CacheSize=256, got %d", cfg.Search.CacheSize)
	}
	if cfg.Embedding.Dimension != 384 {
		t.Errorf("expected Dimension=384, got %d", cfg.Embedding.Dimension)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Classifier.AcceptThreshold != 0.70 {
		t.Errorf("expected default AcceptThreshold, got %f", cfg.Classifier.AcceptThreshold)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blogsearch.yaml")

	content := `
classifier:
  accept_threshold: 0.8
search:
  cache_size: 32
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Classifier.AcceptThreshold != 0.8 {
		t.Errorf("expected AcceptThreshold=0.8, got %f", cfg.Classifier.AcceptThreshold)
	}
	if cfg.Search.CacheSize != 32 {
		t.Errorf("expected CacheSize=32, got %d", cfg.Search.CacheSize)
	}
	// Untouched fields keep their defaults.
	if cfg.Classifier.RejectThreshold != 0.30 {
		t.Errorf("expected default RejectThreshold, got %f", cfg.Classifier.RejectThreshold)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blogsearch.yaml")

	if err := os.WriteFile(configPath, []byte("not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blogsearch.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Path = "/var/lib/blogsearch"
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Storage.Path != "/var/lib/blogsearch" {
		t.Errorf("expected saved path to round-trip, got %q", loaded.Storage.Path)
	}
}
