package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/c360studio/semcrm/export"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Output.Format)
	}
	if cfg.NATS.Subject != "graph.ingest.entity" {
		t.Errorf("expected default subject graph.ingest.entity, got %s", cfg.NATS.Subject)
	}
	if cfg.NATS.Enabled {
		t.Error("expected publishing disabled by default")
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("expected debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "format alias",
			modify:  func(c *Config) { c.Output.Format = "nt" },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name:    "relative base uri",
			modify:  func(c *Config) { c.Entity.BaseURI = "entities/" },
			wantErr: true,
		},
		{
			name:    "mint without base",
			modify:  func(c *Config) { c.Entity.MintURIs = true },
			wantErr: true,
		},
		{
			name: "mint with base",
			modify: func(c *Config) {
				c.Entity.MintURIs = true
				c.Entity.BaseURI = "https://example.org/entity/"
			},
			wantErr: false,
		},
		{
			name: "publish without url",
			modify: func(c *Config) {
				c.NATS.Enabled = true
				c.NATS.URL = ""
			},
			wantErr: true,
		},
		{
			name: "store without url",
			modify: func(c *Config) {
				c.Store.Enabled = true
				c.NATS.URL = ""
			},
			wantErr: true,
		},
		{
			name: "store without bucket",
			modify: func(c *Config) {
				c.Store.Enabled = true
				c.Store.Bucket = ""
			},
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  format: jsonld
  path: out/graph.jsonld
entity:
  base_uri: "https://example.org/entity/"
  mint_uris: true
  strict_labels: true
nats:
  url: "nats://test:4222"
  enabled: true
store:
  enabled: true
  bucket: CRM_TEST
watch:
  debounce: 2s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.OutputFormat() != export.FormatJSONLD {
		t.Errorf("expected format jsonld, got %s", cfg.OutputFormat())
	}
	if cfg.Output.Path != "out/graph.jsonld" {
		t.Errorf("expected path out/graph.jsonld, got %s", cfg.Output.Path)
	}
	if cfg.Entity.BaseURI != "https://example.org/entity/" || !cfg.Entity.MintURIs || !cfg.Entity.StrictLabels {
		t.Errorf("unexpected entity config %+v", cfg.Entity)
	}
	if cfg.NATS.URL != "nats://test:4222" || !cfg.NATS.Enabled {
		t.Errorf("unexpected nats config %+v", cfg.NATS)
	}
	// Subject keeps its default
	if cfg.NATS.Subject != "graph.ingest.entity" {
		t.Errorf("expected default subject, got %s", cfg.NATS.Subject)
	}
	if !cfg.Store.Enabled || cfg.Store.Bucket != "CRM_TEST" {
		t.Errorf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.Debounce)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Output: OutputConfig{
			Format: "ntriples",
		},
		Entity: EntityConfig{
			BaseURI: "urn:override/",
		},
	}

	base.Merge(override)

	if base.Output.Format != "ntriples" {
		t.Errorf("expected format ntriples, got %s", base.Output.Format)
	}
	if base.NATS.URL != "nats://localhost:4222" {
		t.Errorf("expected NATS URL to remain default, got %s", base.NATS.URL)
	}
	if base.Entity.BaseURI != "urn:override/" {
		t.Errorf("expected base urn:override/, got %s", base.Entity.BaseURI)
	}

	base.Merge(nil)
	if base.Output.Format != "ntriples" {
		t.Error("merging nil should not change config")
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Entity.BaseURI = "https://example.org/saved/"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Entity.BaseURI != "https://example.org/saved/" {
		t.Errorf("expected saved base URI, got %s", loaded.Entity.BaseURI)
	}
	if loaded.Watch.Debounce != cfg.Watch.Debounce {
		t.Errorf("expected debounce %v, got %v", cfg.Watch.Debounce, loaded.Watch.Debounce)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	t.Setenv(EnvNATSURL, "")
	t.Setenv(EnvSemcrmURL, "")
	t.Setenv(EnvBaseURI, "")

	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "docs", "plays")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	user := DefaultConfig()
	user.Output.Format = "ntriples"
	user.Entity.BaseURI = "urn:user/"
	if err := user.SaveToFile(filepath.Join(home, UserConfigDir, UserConfigFile)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("entity:\n  base_uri: urn:project/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(nil).WithDirs(nested, home)

	cfg, err := loader.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "ntriples" {
		t.Errorf("expected user format ntriples, got %s", cfg.Output.Format)
	}
	if cfg.Entity.BaseURI != "urn:project/" {
		t.Errorf("expected project base, got %s", cfg.Entity.BaseURI)
	}

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("output:\n  format: dot\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBaseURI, "urn:env/")
	t.Setenv(EnvSemcrmURL, "nats://env:4222")

	cfg, err = loader.Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputFormat() != export.FormatDOT {
		t.Errorf("expected explicit format dot, got %s", cfg.Output.Format)
	}
	if cfg.Entity.BaseURI != "urn:env/" {
		t.Errorf("expected env base, got %s", cfg.Entity.BaseURI)
	}
	if cfg.NATS.URL != "nats://env:4222" {
		t.Errorf("expected env NATS URL, got %s", cfg.NATS.URL)
	}

	if _, err := loader.Load(filepath.Join(home, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoaderRejectsInvalid(t *testing.T) {
	t.Setenv(EnvNATSURL, "")
	t.Setenv(EnvSemcrmURL, "")
	t.Setenv(EnvBaseURI, "")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: rdfxml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(nil).WithDirs(t.TempDir(), t.TempDir()).Load(path)
	if err == nil {
		t.Error("expected validation error")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	loader := NewLoader(nil).WithDirs(t.TempDir(), home)

	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected user config at %s: %v", path, err)
	}
	if err := loader.EnsureUserConfig(); err != nil {
		t.Errorf("second EnsureUserConfig() error = %v", err)
	}
}
