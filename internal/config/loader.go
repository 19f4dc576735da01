package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CRAWLER_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CRAWLER_CONFIG is set
//  3. env (prefix CRAWLER_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CRAWLER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: CRAWLER_S3_BUCKET, CRAWLER_MAX_ATTEMPTS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Provider {
	case "nhl", "fixture":
	default:
		return errors.New("provider must be nhl or fixture")
	}

	switch cfg.Store {
	case "s3":
		if cfg.S3Endpoint == "" {
			return errors.New("s3_endpoint must not be empty")
		}
		if cfg.S3Bucket == "" {
			return errors.New("s3_bucket must not be empty")
		}
	case "fs":
		if cfg.FSPath == "" {
			return errors.New("fs_path must not be empty")
		}
	default:
		return errors.New("store must be s3 or fs")
	}

	if cfg.MaxAttempts <= 0 {
		return errors.New("max_attempts must be positive")
	}
	return nil
}
