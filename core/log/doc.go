// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides leveled, structured logging for the
//              go-utils library and its demo CLI, with text and JSON output
//              formats and contextual fields.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with structured logging

// Package log provides structured logging for go-utils.
//
// A Logger writes leveled entries through a pluggable Formatter. Entries
// carry a message, custom fields, an optional request ID, and an optional
// duration (set by Timer). The demo CLI logs to stderr so that stdout stays
// reserved for computed output.
//
// Basic usage:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelInfo,
//	    Format: log.FormatText,
//	    Output: os.Stderr,
//	    Name:   "goutils",
//	})
//	logger.Info("analysis complete", log.Int("count", len(data)))
//
// Timing an operation:
//
//	timer := log.NewTimer(logger, "AnalyzeData")
//	defer timer.Stop()
package log
