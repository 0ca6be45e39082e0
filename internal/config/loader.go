// Package config provides configuration management for the Courtside Edge
// application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables. It expands environment variable placeholders in the YAML file
// (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. A missing config file is not an error; defaults and environment
// variables apply.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("COURTSIDE_EDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "courtside-edge")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("simulation.default_simulations", 100000)
	v.SetDefault("simulation.batch_size", 10000)
	v.SetDefault("simulation.recency_weight", 0.3)
	v.SetDefault("simulation.home_court_advantage", 2.0)
	v.SetDefault("simulation.league_avg_ortg", 110.0)

	v.SetDefault("betting.bet_edge_threshold", 3.0)
	v.SetDefault("betting.lean_edge_threshold", 1.0)

	v.SetDefault("backtest.seasons", []int{2023})
	v.SetDefault("backtest.simulations", 10000)
	v.SetDefault("backtest.min_edge", 3.0)
	v.SetDefault("backtest.max_bets_per_day", 3)
	v.SetDefault("backtest.unit_stake", 100.0)
	v.SetDefault("backtest.default_odds", 1.91)
	v.SetDefault("backtest.season_workers", 4)
	v.SetDefault("backtest.dataset_dir", "data/backtest")

	v.SetDefault("datasource.timeout_seconds", 15)
	v.SetDefault("datasource.retry_attempts", 3)
	v.SetDefault("datasource.rate_limit_per_sec", 4.0)
	v.SetDefault("datasource.cache_ttl_seconds", 300)
	v.SetDefault("datasource.cache_sweep_seconds", 600)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("health.enabled", true)
	v.SetDefault("health.address", ":8081")
}
