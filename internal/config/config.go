// Package config resolves runtime settings for an effect process from the
// environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel    = "CKBFX_LOG_LEVEL"
	EnvLogFile     = "CKBFX_LOG_FILE"
	EnvMetricsAddr = "CKBFX_METRICS_ADDR"
	EnvMetricsFile = "CKBFX_METRICS_FILE"
	EnvSnapshot    = "CKBFX_SNAPSHOT"
	EnvManifest    = "CKBFX_MANIFEST"
	EnvFile        = "CKBFX_ENV_FILE"
)

// Config holds the process level settings. Zero values disable the
// corresponding feature.
type Config struct {
	LogLevel    string
	LogFile     string
	MetricsAddr string
	// MetricsFile receives a Prometheus textfile dump when the session ends.
	MetricsFile string
	// Snapshot selects where session snapshots are stored: a directory path,
	// "file://<dir>", "redis://host:port/db" or "memory".
	Snapshot string
	Manifest string
}

// Load reads the configuration. Variables from the .env file named by
// CKBFX_ENV_FILE (default ".env") never override variables already set.
// A missing .env file is not an error.
func Load() (Config, error) {
	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return Config{
		LogLevel:    strings.TrimSpace(os.Getenv(EnvLogLevel)),
		LogFile:     strings.TrimSpace(os.Getenv(EnvLogFile)),
		MetricsAddr: strings.TrimSpace(os.Getenv(EnvMetricsAddr)),
		MetricsFile: strings.TrimSpace(os.Getenv(EnvMetricsFile)),
		Snapshot:    strings.TrimSpace(os.Getenv(EnvSnapshot)),
		Manifest:    strings.TrimSpace(os.Getenv(EnvManifest)),
	}, nil
}

// Merge returns c with every non-empty field of override applied.
func (c Config) Merge(override Config) Config {
	if override.LogLevel != "" {
		c.LogLevel = override.LogLevel
	}
	if override.LogFile != "" {
		c.LogFile = override.LogFile
	}
	if override.MetricsAddr != "" {
		c.MetricsAddr = override.MetricsAddr
	}
	if override.MetricsFile != "" {
		c.MetricsFile = override.MetricsFile
	}
	if override.Snapshot != "" {
		c.Snapshot = override.Snapshot
	}
	if override.Manifest != "" {
		c.Manifest = override.Manifest
	}
	return c
}
