// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads configuration for the go-utils demo CLI
//              from TOML or YAML files with defaults and environment
//              variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

// Package config provides configuration loading for go-utils.
//
// Configuration is read from a TOML or YAML file (the format is detected
// from the file extension), merged over a defaults map, and overridable per
// key through environment variables with the GOUTILS_ prefix. Keys use dot
// notation:
//
//	cfg, err := config.Load("configs/config.toml")
//	rate := cfg.GetFloat64("order.tax_rate", 0.08)
//
// The environment variable for "order.tax_rate" is GOUTILS_ORDER_TAX_RATE.
// When no file is available, New constructs a config from defaults alone.
package config
