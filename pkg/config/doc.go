// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, github.com/caarlos0/env/v11 and
// github.com/go-playground/validator/v10:
//
//   - LoadEnv reads one or more .env files into the process environment.
//     Variables that are already set are never overwritten.
//   - Load parses the environment into a struct using env tags, then checks
//     validate tags. Each config type is parsed once and cached.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// Config describes the recordcheck settings. Load works with any struct, so
// callers with their own settings can use it the same way:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//	cfg.Storage = "s3" // e.g. from a flag
//	if err := cfg.Validate(); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Parse failures wrap ErrParsingConfig and validation failures wrap
// ErrInvalidConfig. A failed load is not cached, so it can be retried after
// the environment is fixed.
package config
