// Package config loads engine configuration from YAML files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the blogsearch engine.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Search     SearchConfig     `yaml:"search"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// StorageConfig holds storage backend configuration.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// EmbeddingConfig holds embedding service configuration.
type EmbeddingConfig struct {
	Host      string `yaml:"host"`
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
}

// ClassifierConfig holds classification thresholds and fusion weights.
type ClassifierConfig struct {
	AcceptThreshold  float64 `yaml:"accept_threshold"`
	RejectThreshold  float64 `yaml:"reject_threshold"`
	EmbeddingWeight  float64 `yaml:"embedding_weight"`
	StructuralWeight float64 `yaml:"structural_weight"`
	LexicalWeight    float64 `yaml:"lexical_weight"`
	PoolSize         int     `yaml:"pool_size"`
}

// SearchConfig holds query-time configuration.
type SearchConfig struct {
	LexicalWeight  float64 `yaml:"lexical_weight"`
	SemanticWeight float64 `yaml:"semantic_weight"`
	CacheSize      int     `yaml:"cache_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "./blogsearch_db",
		},
		Embedding: EmbeddingConfig{
			Host:      "http://localhost:11434/v1",
			Model:     "all-minilm",
			Dimension: 384,
		},
		Classifier: ClassifierConfig{
			AcceptThreshold:  0.70,
			RejectThreshold:  0.30,
			EmbeddingWeight:  0.4,
			StructuralWeight: 0.3,
			LexicalWeight:    0.3,
		},
		Search: SearchConfig{
			LexicalWeight:  0.6,
			SemanticWeight: 0.4,
			CacheSize:      256,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults without error; values present in the file override defaults
// field by field.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
