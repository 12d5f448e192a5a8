package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/tabs/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Page != DefaultPage {
		t.Errorf("Page = %q, want %q", cfg.Page, DefaultPage)
	}
	if cfg.Markers.Root != "data-js-tabs" || cfg.Markers.ActiveClass != "is-active" {
		t.Errorf("Markers = %+v, want defaults", cfg.Markers)
	}
	if cfg.Tracing.Enabled {
		t.Error("Tracing should be disabled by default")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E121") {
		t.Errorf("Expected E121 for missing config, got: %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "page": "pages/home.html",
  "markers": {
    "root": "data-tabs",
    "activeClass": "selected"
  },
  "server": {
    "port": 8080,
    "host": "0.0.0.0",
    "readTimeout": "1m"
  },
  "tracing": {
    "enabled": true
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address = %q, want %q", cfg.Address(), "0.0.0.0:8080")
	}
	if d, _ := cfg.ReadTimeout(); d != time.Minute {
		t.Errorf("ReadTimeout = %v, want 1m", d)
	}
	m := cfg.TabsMarkers()
	if m.Root != "data-tabs" || m.Button != "data-js-tabs-button" || m.ActiveClass != "selected" {
		t.Errorf("TabsMarkers = %+v", m)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Exporter != ExporterStdout {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
	if want := filepath.Join(tmpDir, "pages", "home.html"); cfg.PageLocation() != want {
		t.Errorf("PageLocation = %q, want %q", cfg.PageLocation(), want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E120") {
		t.Errorf("Expected E120 error, got: %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := New()
	cfg.Server.Port = 9000
	cfg.Page = "s3://bucket/index.html"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path = %q, want %q", cfg.Path(), configPath)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want %d", loaded.Server.Port, 9000)
	}
	if loaded.PageLocation() != "s3://bucket/index.html" {
		t.Errorf("PageLocation = %q, want the URL unchanged", loaded.PageLocation())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "E122"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "E122"},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }, "E120"},
		{"negative sessions", func(c *Config) { c.Server.MaxSessions = -1 }, "E120"},
		{"unknown exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }, "E120"},
		{"same markers", func(c *Config) { c.Markers.Panel = c.Markers.Button }, "E120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Validate = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestSetAddress(t *testing.T) {
	cfg := New()

	if err := cfg.SetAddress(":8081"); err != nil {
		t.Fatalf("SetAddress: %v", err)
	}
	if cfg.Server.Host != "" || cfg.Server.Port != 8081 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Address() != ":8081" {
		t.Errorf("Address = %q, want %q", cfg.Address(), ":8081")
	}

	if err := cfg.SetAddress("localhost"); !errors.HasCode(err, "E122") {
		t.Errorf("SetAddress without port = %v, want E122", err)
	}
	if err := cfg.SetAddress("localhost:http"); !errors.HasCode(err, "E122") {
		t.Errorf("SetAddress with named port = %v, want E122", err)
	}
}

func TestPageLocationWithoutFile(t *testing.T) {
	cfg := New()
	if cfg.PageLocation() != DefaultPage {
		t.Errorf("PageLocation = %q, want %q", cfg.PageLocation(), DefaultPage)
	}
}

func TestFindConfigDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindConfigDir(nested); !errors.HasCode(err, "E121") {
		t.Errorf("FindConfigDir without config = %v, want E121", err)
	}

	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(root) {
		t.Error("Exists should report the config file")
	}

	dir, err := FindConfigDir(nested)
	if err != nil {
		t.Fatalf("FindConfigDir: %v", err)
	}
	if dir != root {
		t.Errorf("FindConfigDir = %q, want %q", dir, root)
	}
}
