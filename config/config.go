// Package config provides configuration loading and management for semcrm.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/c360studio/semcrm/export"
	"github.com/c360studio/semcrm/graph"
	"github.com/c360studio/semcrm/storage"
	"gopkg.in/yaml.v3"
)

// Config represents the complete semcrm configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Entity EntityConfig `yaml:"entity"`
	NATS   NATSConfig   `yaml:"nats"`
	Store  StoreConfig  `yaml:"store"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig configures serialization of built graphs
type OutputConfig struct {
	// Format is the serialization format name or alias (default: turtle)
	Format string `yaml:"format"`
	// Path is the output file (empty = stdout)
	Path string `yaml:"path"`
}

// EntityConfig configures how entities get their URIs and labels
type EntityConfig struct {
	// BaseURI is the namespace for entities without an explicit URI
	BaseURI string `yaml:"base_uri"`
	// MintURIs mints base+uuid URIs instead of base+id
	MintURIs bool `yaml:"mint_uris"`
	// StrictLabels fails a build when any label is invalid
	StrictLabels bool `yaml:"strict_labels"`
}

// NATSConfig configures publishing built entities to the graph ingest stream
type NATSConfig struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Subject is the subject entity payloads are published to
	Subject string `yaml:"subject"`
	// Enabled publishes on every build
	Enabled bool `yaml:"enabled"`
}

// StoreConfig configures persisting entity graphs in a NATS KV bucket
type StoreConfig struct {
	// Enabled saves every built entity to the bucket
	Enabled bool `yaml:"enabled"`
	// Bucket is the KV bucket name
	Bucket string `yaml:"bucket"`
}

// WatchConfig configures rebuilds on document changes
type WatchConfig struct {
	// Debounce is how long to wait for more changes before rebuilding
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(export.DefaultFormat),
			Path:   "", // stdout
		},
		Entity: EntityConfig{
			BaseURI: "",
		},
		NATS: NATSConfig{
			URL:     "nats://localhost:4222",
			Subject: graph.GraphIngestSubject,
			Enabled: false,
		},
		Store: StoreConfig{
			Enabled: false,
			Bucket:  storage.DefaultBucket,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Entity.BaseURI != "" {
		if _, err := graph.ParseURI(c.Entity.BaseURI); err != nil {
			return fmt.Errorf("entity.base_uri: %w", err)
		}
	}
	if c.Entity.MintURIs && c.Entity.BaseURI == "" {
		return fmt.Errorf("entity.mint_uris requires entity.base_uri")
	}
	if c.NATS.Enabled {
		if c.NATS.URL == "" {
			return fmt.Errorf("nats.url is required when publishing is enabled")
		}
		if c.NATS.Subject == "" {
			return fmt.Errorf("nats.subject is required when publishing is enabled")
		}
	}
	if c.Store.Enabled {
		if c.NATS.URL == "" {
			return fmt.Errorf("nats.url is required when the store is enabled")
		}
		if c.Store.Bucket == "" {
			return fmt.Errorf("store.bucket is required when the store is enabled")
		}
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}

	// Entity
	if other.Entity.BaseURI != "" {
		c.Entity.BaseURI = other.Entity.BaseURI
	}
	if other.Entity.MintURIs {
		c.Entity.MintURIs = true
	}
	if other.Entity.StrictLabels {
		c.Entity.StrictLabels = true
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.Enabled {
		c.NATS.Enabled = true
	}

	// Store
	if other.Store.Enabled {
		c.Store.Enabled = true
	}
	if other.Store.Bucket != "" {
		c.Store.Bucket = other.Store.Bucket
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}

// OutputFormat returns the configured format, resolved from any alias.
func (c *Config) OutputFormat() export.Format {
	f, err := export.ParseFormat(c.Output.Format)
	if err != nil {
		return export.DefaultFormat
	}
	return f
}
