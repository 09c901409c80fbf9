// File: config.go
// Title: Configuration Loading and Access
// Description: Implements the Config type with TOML/YAML parsing, dot-path
//              access, a defaults layer, and environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/go-utils/core/errors"
	"github.com/msto63/go-utils/utils/stringx"
)

// DefaultEnvPrefix is the environment variable prefix for overrides
const DefaultEnvPrefix = "GOUTILS"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with layered lookups:
// environment overrides, then file data, then defaults.
type Config struct {
	data      map[string]interface{}
	defaults  map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: GOUTILS)
	Defaults  map[string]interface{} // Default values by dot-path key
}

// New creates a configuration from defaults alone, without a file
func New(defaults map[string]interface{}) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		defaults:  defaults,
		envPrefix: DefaultEnvPrefix,
	}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, errors.ConfigError("Load", "config file path cannot be empty", nil)
	}

	format := options.Format
	if format == FormatAuto {
		detected, err := detectFormat(filePath)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.ConfigError("Load", "cannot read config file", err)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, errors.ConfigError("Load", "cannot parse TOML config", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, errors.ConfigError("Load", "cannot parse YAML config", err)
		}
	}

	return &Config{
		data:      data,
		defaults:  options.Defaults,
		filePath:  filePath,
		format:    format,
		envPrefix: stringx.DefaultIfBlank(options.EnvPrefix, DefaultEnvPrefix),
	}, nil
}

// detectFormat determines the file format from the extension
func detectFormat(filePath string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errors.ConfigError("detectFormat",
			"cannot detect config format from extension", nil).
			WithDetail("path", filePath)
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Get returns the raw value for a dot-path key.
// Lookup order: environment override, file data, defaults.
func (c *Config) Get(key string) (interface{}, bool) {
	if value, ok := c.envLookup(key); ok {
		return value, true
	}

	if value, ok := lookupPath(c.data, strings.Split(key, ".")); ok {
		return value, true
	}

	if c.defaults != nil {
		if value, ok := c.defaults[key]; ok {
			return value, true
		}
	}

	return nil, false
}

// GetString returns a string value, or the fallback if not present
func (c *Config) GetString(key, fallback string) string {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

// GetInt returns an int value, or the fallback if not present
func (c *Config) GetInt(key string, fallback int) int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetFloat64 returns a float64 value, or the fallback if not present
func (c *Config) GetFloat64(key string, fallback float64) float64 {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool returns a bool value, or the fallback if not present
func (c *Config) GetBool(key string, fallback bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetIntSlice returns an int slice value, or the fallback if not present
func (c *Config) GetIntSlice(key string, fallback []int) []int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	items, ok := value.([]interface{})
	if !ok {
		return fallback
	}

	result := make([]int, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case int:
			result = append(result, v)
		case int64:
			result = append(result, int(v))
		case float64:
			result = append(result, int(v))
		default:
			return fallback
		}
	}
	return result
}

// envLookup checks for an environment variable override of the key.
// The key "order.tax_rate" maps to GOUTILS_ORDER_TAX_RATE.
func (c *Config) envLookup(key string) (interface{}, bool) {
	if stringx.IsBlank(c.envPrefix) {
		return nil, false
	}

	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if value, ok := os.LookupEnv(envKey); ok {
		return value, true
	}
	return nil, false
}

// lookupPath walks nested maps following the path segments
func lookupPath(data map[string]interface{}, path []string) (interface{}, bool) {
	if len(path) == 0 {
		return nil, false
	}

	value, ok := data[path[0]]
	if !ok {
		return nil, false
	}

	if len(path) == 1 {
		return value, true
	}

	switch nested := value.(type) {
	case map[string]interface{}:
		return lookupPath(nested, path[1:])
	case map[interface{}]interface{}:
		// yaml.v3 map keys can decode as interface{}
		converted := make(map[string]interface{}, len(nested))
		for k, v := range nested {
			if ks, ok := k.(string); ok {
				converted[ks] = v
			}
		}
		return lookupPath(converted, path[1:])
	default:
		return nil, false
	}
}
