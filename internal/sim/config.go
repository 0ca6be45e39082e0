// Package sim implements single-game simulation and the Monte Carlo engine
// that aggregates trials into a matchup summary.
package sim

import (
	"github.com/yourusername/courtside-edge/internal/models"
)

// FactorVariance holds the per-game sampling parameters for one Four Factors
// dimension: the standard deviation of the draw plus the realistic bounds it
// is clamped to.
type FactorVariance struct {
	StdDev float64
	Min    float64
	Max    float64
}

// Config carries every numeric policy the simulator depends on. Tests
// override individual fields; production uses DefaultConfig.
type Config struct {
	// Standard deviations of the per-trial noise terms.
	PaceStdDev  float64
	ORtgStdDev  float64
	DRtgStdDev  float64
	ScoreStdDev float64

	// Floors applied after noise so a bad draw cannot produce nonsense.
	MinPace float64
	MaxPace float64
	MinORtg float64
	MinDRtg float64

	// LeagueAvgORtg normalizes opponent defense in the points-per-possession
	// blend.
	LeagueAvgORtg float64

	// HomeCourtAdvantage is added to the home team's expected score.
	HomeCourtAdvantage float64

	// Four Factors league baselines, weights and sampling variance.
	LeagueAvgEFGPct          float64
	LeagueAvgFTARate         float64
	LeagueAvgTOVPct          float64
	LeagueAvgOREBPct         float64
	LeagueAvgPtsOffTurnovers float64
	LeagueAvgPtsSecondChance float64

	WeightEFGPct          float64
	WeightFTARate         float64
	WeightTOVPct          float64
	WeightOREBPct         float64
	WeightPtsOffTurnovers float64
	WeightPtsSecondChance float64

	EFGPctVariance          FactorVariance
	FTARateVariance         FactorVariance
	TOVPctVariance          FactorVariance
	OREBPctVariance         FactorVariance
	PtsOffTurnoversVariance FactorVariance
	PtsSecondChanceVariance FactorVariance

	// MultiplierMin/Max bound the combined Four Factors multiplier.
	MultiplierMin float64
	MultiplierMax float64
}

// DefaultConfig returns the production simulation parameters, tuned to the
// variance NBA teams show game to game around their season averages.
func DefaultConfig() Config {
	return Config{
		PaceStdDev:  4.0,
		ORtgStdDev:  6.0,
		DRtgStdDev:  5.0,
		ScoreStdDev: 8.0,

		MinPace: 85.0,
		MaxPace: 110.0,
		MinORtg: 90.0,
		MinDRtg: 95.0,

		LeagueAvgORtg:      110.0,
		HomeCourtAdvantage: 2.0,

		LeagueAvgEFGPct:          0.540,
		LeagueAvgFTARate:         0.250,
		LeagueAvgTOVPct:          0.140,
		LeagueAvgOREBPct:         0.280,
		LeagueAvgPtsOffTurnovers: 15.0,
		LeagueAvgPtsSecondChance: 12.0,

		WeightEFGPct:          0.40,
		WeightFTARate:         0.15,
		WeightTOVPct:          0.25,
		WeightOREBPct:         0.20,
		WeightPtsOffTurnovers: 0.10,
		WeightPtsSecondChance: 0.10,

		EFGPctVariance:          FactorVariance{StdDev: 0.04, Min: 0.45, Max: 0.65},
		FTARateVariance:         FactorVariance{StdDev: 0.03, Min: 0.15, Max: 0.35},
		TOVPctVariance:          FactorVariance{StdDev: 0.02, Min: 0.08, Max: 0.22},
		OREBPctVariance:         FactorVariance{StdDev: 0.03, Min: 0.18, Max: 0.36},
		PtsOffTurnoversVariance: FactorVariance{StdDev: 3.0, Min: 8.0, Max: 26.0},
		PtsSecondChanceVariance: FactorVariance{StdDev: 2.5, Min: 6.0, Max: 22.0},

		MultiplierMin: 0.85,
		MultiplierMax: 1.15,
	}
}

// Validate checks the config for values that would corrupt a simulation.
func (c Config) Validate() error {
	if c.PaceStdDev < 0 || c.ORtgStdDev < 0 || c.DRtgStdDev < 0 || c.ScoreStdDev < 0 {
		return models.NewConfigurationError("noise_std_dev", "must be non-negative")
	}
	if c.MinPace <= 0 || c.MaxPace <= c.MinPace {
		return models.NewConfigurationError("pace_bounds", "require 0 < min < max")
	}
	if c.LeagueAvgORtg <= 0 {
		return models.NewConfigurationError("league_avg_ortg", "must be positive")
	}
	if c.MultiplierMin <= 0 || c.MultiplierMax < c.MultiplierMin {
		return models.NewConfigurationError("multiplier_bounds", "require 0 < min <= max")
	}
	return nil
}
