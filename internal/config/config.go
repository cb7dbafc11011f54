// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFile        = "docker-lab.log"
)

// StructuredConfig is the top-level configuration container for the
// docker-lab application. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Runtime holds the values injected into the container at launch.
	// It has no prefix so the variables keep their public names.
	Runtime Runtime

	// Server holds the HTTP listener settings. When HTTPAddress is empty the
	// application runs the terminal UI instead.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Runtime holds configuration resolved when the process starts.
type Runtime struct {
	// APIURL is shown as the runtime API URL. Never parsed.
	// Env: API_URL
	APIURL string `env:"API_URL"`
}

// Server holds network and timeout settings for the HTTP front end.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File receives log output while the terminal UI owns stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// WebMode reports whether the HTTP front end was requested.
func (cfg *StructuredConfig) WebMode() bool {
	return cfg.Server.HTTPAddress != ""
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from the environment, os.Args and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultLogFile
	}
}
