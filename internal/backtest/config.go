// Package backtest replays historical seasons through the analysis engine
// and measures how the betting policy would have performed.
package backtest

import (
	"fmt"

	appconfig "github.com/yourusername/courtside-edge/internal/config"
)

// Config holds backtest engine configuration
type Config struct {
	Seasons        []int
	Simulations    int
	Seed           int64
	MinEdge        float64
	MaxBetsPerDay  int
	UnitStake      float64
	SeasonWorkers  int
	DatasetDir     string
	PersistResults bool
}

// FromConfig creates backtest configuration from application config
func FromConfig(cfg *appconfig.Config) Config {
	return Config{
		Seasons:        cfg.Backtest.Seasons,
		Simulations:    cfg.Backtest.Simulations,
		Seed:           cfg.Backtest.Seed,
		MinEdge:        cfg.Backtest.MinEdge,
		MaxBetsPerDay:  cfg.Backtest.MaxBetsPerDay,
		UnitStake:      cfg.Backtest.UnitStake,
		SeasonWorkers:  cfg.Backtest.SeasonWorkers,
		DatasetDir:     cfg.Backtest.DatasetDir,
		PersistResults: cfg.Backtest.PersistResults,
	}
}

// Validate checks configuration values
func (c Config) Validate() error {
	if len(c.Seasons) == 0 {
		return fmt.Errorf("at least one season is required")
	}
	if c.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive, got %d", c.Simulations)
	}
	if c.MinEdge < 0 {
		return fmt.Errorf("min edge must not be negative, got %f", c.MinEdge)
	}
	if c.MaxBetsPerDay <= 0 {
		return fmt.Errorf("max bets per day must be positive, got %d", c.MaxBetsPerDay)
	}
	if c.UnitStake <= 0 {
		return fmt.Errorf("unit stake must be positive, got %f", c.UnitStake)
	}
	if c.SeasonWorkers <= 0 {
		return fmt.Errorf("season workers must be positive, got %d", c.SeasonWorkers)
	}
	if c.DatasetDir == "" {
		return fmt.Errorf("dataset directory is required")
	}
	return nil
}
