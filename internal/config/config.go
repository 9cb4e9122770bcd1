// Package config loads settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath    string `yaml:"db_path"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ReminderSpec string `yaml:"reminder_spec"`
	Timezone     string `yaml:"timezone"`

	Extractor ExtractorConfig `yaml:"extractor"`
}

type ExtractorConfig struct {
	Backend             string  `yaml:"backend"`
	MinSegmentLength    int     `yaml:"min_segment_length"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxCandidates       int     `yaml:"max_candidates"`
	MaxInputBytes       int     `yaml:"max_input_bytes"`
}

// Load reads the YAML file at path if it exists, applies environment
// overrides, and fills defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	var cfg Config

	if envPath := os.Getenv("HOUSEHOLD_CONFIG"); envPath != "" {
		path = envPath
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	envOverride(&cfg.DBPath, "HOUSEHOLD_DB_PATH")
	envOverride(&cfg.LogLevel, "HOUSEHOLD_LOG_LEVEL")
	envOverride(&cfg.LogFormat, "HOUSEHOLD_LOG_FORMAT")
	envOverride(&cfg.ReminderSpec, "HOUSEHOLD_REMINDER_SPEC")
	envOverride(&cfg.Timezone, "HOUSEHOLD_TIMEZONE")
	envOverride(&cfg.Extractor.Backend, "HOUSEHOLD_EXTRACTOR_BACKEND")
	envOverrideInt(&cfg.Extractor.MinSegmentLength, "HOUSEHOLD_EXTRACTOR_MIN_SEGMENT")
	envOverrideFloat(&cfg.Extractor.SimilarityThreshold, "HOUSEHOLD_EXTRACTOR_SIMILARITY")
	envOverrideInt(&cfg.Extractor.MaxCandidates, "HOUSEHOLD_EXTRACTOR_MAX_CANDIDATES")
	envOverrideInt(&cfg.Extractor.MaxInputBytes, "HOUSEHOLD_EXTRACTOR_MAX_INPUT_BYTES")

	if cfg.DBPath == "" {
		cfg.DBPath = "./household.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.ReminderSpec == "" {
		cfg.ReminderSpec = "0 8 * * *"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if cfg.Extractor.Backend == "" {
		cfg.Extractor.Backend = "pattern"
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envOverrideFloat(target *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}
