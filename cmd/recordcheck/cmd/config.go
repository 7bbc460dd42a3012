package cmd

import (
	"github.com/dmitrymomot/recordcheck/pkg/config"
)

func loadConfig(envFile string) (config.Config, error) {
	var cfg config.Config
	if envFile == "" {
		return cfg, config.Load(&cfg)
	}
	if err := config.LoadEnv(envFile); err != nil {
		return cfg, err
	}
	return cfg, config.ForceReloadConfig(&cfg)
}
