// File: config_test.go
// Title: Unit Tests for Configuration Loading
// Description: Tests for TOML/YAML loading, dot-path access, typed getters,
//              the defaults layer, and environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation for config loading

package config

import (
	"os"
	"path/filepath"
	"testing"

	apperror "github.com/msto63/go-utils/core/error"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}
	return path
}

const tomlFixture = `
[order]
tax_rate = 0.08
max_items = 10
currency = "EUR"
express = true

[demo]
data = [1, 2, 3, 4, 5]
`

const yamlFixture = `
order:
  tax_rate: 0.08
  max_items: 10
  currency: EUR
  express: true
demo:
  data: [1, 2, 3, 4, 5]
`

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlFixture)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetFloat64("order.tax_rate", 0); got != 0.08 {
		t.Errorf("GetFloat64(order.tax_rate) = %v, want 0.08", got)
	}
	if got := cfg.GetInt("order.max_items", 0); got != 10 {
		t.Errorf("GetInt(order.max_items) = %v, want 10", got)
	}
	if got := cfg.GetString("order.currency", ""); got != "EUR" {
		t.Errorf("GetString(order.currency) = %q, want EUR", got)
	}
	if got := cfg.GetBool("order.express", false); !got {
		t.Error("GetBool(order.express) = false, want true")
	}
	if got := cfg.FilePath(); got != path {
		t.Errorf("FilePath() = %q, want %q", got, path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", yamlFixture)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetFloat64("order.tax_rate", 0); got != 0.08 {
		t.Errorf("GetFloat64(order.tax_rate) = %v, want 0.08", got)
	}
	if got := cfg.GetString("order.currency", ""); got != "EUR" {
		t.Errorf("GetString(order.currency) = %q, want EUR", got)
	}
}

func TestGetIntSlice(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlFixture)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := cfg.GetIntSlice("demo.data", nil)
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("GetIntSlice(demo.data) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetIntSlice(demo.data) = %v, want %v", got, want)
		}
	}
}

func TestDefaultsFallback(t *testing.T) {
	cfg := New(map[string]interface{}{
		"order.tax_rate": 0.08,
	})

	if got := cfg.GetFloat64("order.tax_rate", 0); got != 0.08 {
		t.Errorf("GetFloat64(order.tax_rate) = %v, want default 0.08", got)
	}
	if got := cfg.GetFloat64("order.discount", 0.05); got != 0.05 {
		t.Errorf("GetFloat64(order.discount) = %v, want fallback 0.05", got)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlFixture)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{"order.tax_rate": 0.19},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetFloat64("order.tax_rate", 0); got != 0.08 {
		t.Errorf("GetFloat64(order.tax_rate) = %v, want file value 0.08", got)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlFixture)

	t.Setenv("GOUTILS_ORDER_TAX_RATE", "0.19")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetFloat64("order.tax_rate", 0); got != 0.19 {
		t.Errorf("GetFloat64(order.tax_rate) = %v, want env override 0.19", got)
	}
}

func TestEnvOverrideCustomPrefix(t *testing.T) {
	path := writeTempConfig(t, "config.toml", tomlFixture)

	t.Setenv("ACME_ORDER_MAX_ITEMS", "25")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "ACME"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetInt("order.max_items", 0); got != 25 {
		t.Errorf("GetInt(order.max_items) = %v, want env override 25", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"blank path", "   "},
		{"missing file", filepath.Join(t.TempDir(), "missing.toml")},
		{"unknown extension", filepath.Join(t.TempDir(), "config.ini")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !apperror.HasCode(err, apperror.CodeConfigError) {
				t.Errorf("Load() error code = %v, want %v",
					apperror.GetCode(err), apperror.CodeConfigError)
			}
		})
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", "order = {{")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestGetMissingKey(t *testing.T) {
	cfg := New(nil)

	if _, ok := cfg.Get("nope.nothing"); ok {
		t.Error("Get() ok = true for missing key")
	}
	if got := cfg.GetString("nope.nothing", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q, want fallback", got)
	}
}
