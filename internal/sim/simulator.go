package sim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yourusername/courtside-edge/internal/models"
)

// GameSimulator produces exactly one GameOutcome per call. It performs no
// I/O and is pure given its randomness source, so a fixed seed reproduces a
// run exactly.
type GameSimulator struct {
	cfg Config
	src rand.Source
}

// NewGameSimulator creates a simulator around the given randomness source.
// The source must not be shared with another concurrent simulator.
func NewGameSimulator(cfg Config, src rand.Source) *GameSimulator {
	return &GameSimulator{cfg: cfg, src: src}
}

// normal draws one sample from N(mu, sigma).
func (g *GameSimulator) normal(mu, sigma float64) float64 {
	if sigma == 0 {
		return mu
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

// sampleFactor draws a per-game value for one Four Factors dimension and
// keeps it inside realistic bounds.
func (g *GameSimulator) sampleFactor(mean float64, fv FactorVariance) float64 {
	return clamp(g.normal(mean, fv.StdDev), fv.Min, fv.Max)
}

// factorComponent is the weighted contribution of one dimension: the
// offense's normalized deviation from league average minus the defense's,
// halved. higherBetterOff flips for stats where lower is better (turnovers).
func factorComponent(offValue, defValue, leagueAvg, weight float64, higherBetterOff, higherBetterDef bool) float64 {
	offDev := normalizedDiff(offValue, leagueAvg, higherBetterOff)
	defDev := normalizedDiff(defValue, leagueAvg, higherBetterDef)
	return weight * (offDev - defDev) / 2.0
}

func normalizedDiff(value, leagueAvg float64, higherBetter bool) float64 {
	if higherBetter {
		return (value - leagueAvg) / leagueAvg
	}
	return (leagueAvg - value) / leagueAvg
}

// efficiencyMultiplier samples the offense's Four Factors against the
// defense's allowed mirrors and folds the weighted deviations into a single
// scoring-rate multiplier, clamped to the configured bounds.
func (g *GameSimulator) efficiencyMultiplier(off, def *models.StatLine) float64 {
	cfg := &g.cfg
	multiplier := 1.0

	multiplier += factorComponent(
		g.sampleFactor(off.EFGPct, cfg.EFGPctVariance),
		g.sampleFactor(def.OppEFGPct, cfg.EFGPctVariance),
		cfg.LeagueAvgEFGPct, cfg.WeightEFGPct, true, false)

	multiplier += factorComponent(
		g.sampleFactor(off.FTARate, cfg.FTARateVariance),
		g.sampleFactor(def.OppFTARate, cfg.FTARateVariance),
		cfg.LeagueAvgFTARate, cfg.WeightFTARate, true, false)

	multiplier += factorComponent(
		g.sampleFactor(off.TOVPct, cfg.TOVPctVariance),
		g.sampleFactor(def.OppTOVPct, cfg.TOVPctVariance),
		cfg.LeagueAvgTOVPct, cfg.WeightTOVPct, false, true)

	multiplier += factorComponent(
		g.sampleFactor(off.OREBPct, cfg.OREBPctVariance),
		g.sampleFactor(def.OppOREBPct, cfg.OREBPctVariance),
		cfg.LeagueAvgOREBPct, cfg.WeightOREBPct, true, false)

	multiplier += factorComponent(
		g.sampleFactor(off.PtsOffTurnovers, cfg.PtsOffTurnoversVariance),
		g.sampleFactor(def.OppPtsOffTurnovers, cfg.PtsOffTurnoversVariance),
		cfg.LeagueAvgPtsOffTurnovers, cfg.WeightPtsOffTurnovers, true, false)

	multiplier += factorComponent(
		g.sampleFactor(off.PtsSecondChance, cfg.PtsSecondChanceVariance),
		g.sampleFactor(def.OppPtsSecondChance, cfg.PtsSecondChanceVariance),
		cfg.LeagueAvgPtsSecondChance, cfg.WeightPtsSecondChance, true, false)

	return clamp(multiplier, cfg.MultiplierMin, cfg.MultiplierMax)
}

// Simulate draws one randomized final score pair for a single game between
// the two adjusted profiles and resolves spread coverage. Spread follows the
// sportsbook convention: negative means the home team is favored.
func (g *GameSimulator) Simulate(home, away *models.AdjustedTeamProfile, spread float64) models.GameOutcome {
	cfg := &g.cfg

	// Both teams play at one shared game pace: the average of their
	// tendencies plus a single game-flow perturbation.
	gamePace := (home.Pace+away.Pace)/2.0 + g.normal(0, cfg.PaceStdDev)
	gamePace = clamp(gamePace, cfg.MinPace, cfg.MaxPace)

	homeORtg := math.Max(cfg.MinORtg, g.normal(home.OffensiveRating, cfg.ORtgStdDev))
	awayORtg := math.Max(cfg.MinORtg, g.normal(away.OffensiveRating, cfg.ORtgStdDev))
	homeDRtg := math.Max(cfg.MinDRtg, g.normal(home.DefensiveRating, cfg.DRtgStdDev))
	awayDRtg := math.Max(cfg.MinDRtg, g.normal(away.DefensiveRating, cfg.DRtgStdDev))

	homeMult := g.efficiencyMultiplier(&home.Stats, &away.Stats)
	awayMult := g.efficiencyMultiplier(&away.Stats, &home.Stats)

	// Offense meets opponent defense, normalized by the league average.
	homePPP := (homeORtg / 100.0) * (awayDRtg / cfg.LeagueAvgORtg) * homeMult
	awayPPP := (awayORtg / 100.0) * (homeDRtg / cfg.LeagueAvgORtg) * awayMult

	homeExpected := gamePace*homePPP + cfg.HomeCourtAdvantage
	awayExpected := gamePace * awayPPP

	homeScore := roundScore(homeExpected + g.normal(0, cfg.ScoreStdDev))
	awayScore := roundScore(awayExpected + g.normal(0, cfg.ScoreStdDev))

	margin := homeScore - awayScore

	// A push happens only when the margin exactly refunds the home spread
	// ticket, which is the negated posted spread under this convention.
	var cover models.CoverResult
	switch {
	case math.Abs(float64(margin)-(-spread)) <= 1e-9:
		cover = models.Push
	case float64(margin) > -spread:
		cover = models.HomeCovers
	default:
		cover = models.AwayCovers
	}

	return models.GameOutcome{
		HomeScore: homeScore,
		AwayScore: awayScore,
		Margin:    margin,
		Cover:     cover,
	}
}

func roundScore(v float64) int {
	s := int(math.Round(v))
	if s < 0 {
		return 0
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
