package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/linera-bridge/decode"
	"github.com/wippyai/linera-bridge/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wirectl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
schema = " contract-runtime "
memory_limit_pages = 16
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := defaultConfig()
	want.Schema = decode.SchemaContractRuntime
	want.MemoryLimitPages = 16
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind errors.Kind
	}{
		{"syntax", "schema = ", errors.KindInvalidData},
		{"unknown key", "scheme = \"service\"", errors.KindInvalidInput},
		{"wrong type", "memory_limit_pages = \"many\"", errors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error = %v, want *errors.Error", err)
			}
			if e.Phase != errors.PhaseConfig || e.Kind != tt.kind {
				t.Errorf("error = %v, want [config] %s", err, tt.kind)
			}
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("missing file loaded")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config)
		ok     bool
	}{
		{"defaults", func(*config) {}, true},
		{"text", func(c *config) { c.Format = formatText }, true},
		{"contract", func(c *config) { c.Schema = decode.SchemaContract }, true},
		{"debug", func(c *config) { c.LogLevel = "debug" }, true},
		{"bad schema", func(c *config) { c.Schema = "oracle" }, false},
		{"bad format", func(c *config) { c.Format = "json" }, false},
		{"bad level", func(c *config) { c.LogLevel = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if (err == nil) != tt.ok {
				t.Errorf("validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
