package sim

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/yourusername/courtside-edge/internal/models"
)

func TestSimulateClassifiesCoverAgainstNegatedSpread(t *testing.T) {
	sim := NewGameSimulator(DefaultConfig(), rand.NewSource(1))
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	// Across many draws every outcome must satisfy the cover rule exactly.
	spreads := []float64{-10.5, -3.5, -3.0, 0, 2.0, 5.5}
	for _, spread := range spreads {
		for i := 0; i < 500; i++ {
			game := sim.Simulate(home, away, spread)
			margin := float64(game.Margin)
			switch game.Cover {
			case models.Push:
				if math.Abs(margin-(-spread)) > 1e-9 {
					t.Fatalf("push with margin %v at spread %v", margin, spread)
				}
			case models.HomeCovers:
				if margin <= -spread {
					t.Fatalf("home cover with margin %v at spread %v", margin, spread)
				}
			case models.AwayCovers:
				if margin >= -spread {
					t.Fatalf("away cover with margin %v at spread %v", margin, spread)
				}
			}
			if game.Margin != game.HomeScore-game.AwayScore {
				t.Fatalf("margin %d does not match scores %d-%d", game.Margin, game.HomeScore, game.AwayScore)
			}
		}
	}
}

func TestSimulateNeverPushesOnHalfPointLine(t *testing.T) {
	sim := NewGameSimulator(DefaultConfig(), rand.NewSource(2))
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	for i := 0; i < 2000; i++ {
		game := sim.Simulate(home, away, -3.5)
		if game.Cover == models.Push {
			t.Fatalf("half-point line cannot push, margin %d", game.Margin)
		}
	}
}

func TestSimulateScoresAreNonNegative(t *testing.T) {
	sim := NewGameSimulator(DefaultConfig(), rand.NewSource(3))
	// Pathologically weak offense to force the floor.
	home := testProfile("Team A", 86, 91, 125)
	away := testProfile("Team B", 86, 91, 125)

	for i := 0; i < 1000; i++ {
		game := sim.Simulate(home, away, 0)
		if game.HomeScore < 0 || game.AwayScore < 0 {
			t.Fatalf("negative score %d-%d", game.HomeScore, game.AwayScore)
		}
	}
}

func TestSimulateZeroNoiseIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PaceStdDev = 0
	cfg.ORtgStdDev = 0
	cfg.DRtgStdDev = 0
	cfg.ScoreStdDev = 0
	cfg.EFGPctVariance.StdDev = 0
	cfg.FTARateVariance.StdDev = 0
	cfg.TOVPctVariance.StdDev = 0
	cfg.OREBPctVariance.StdDev = 0
	cfg.PtsOffTurnoversVariance.StdDev = 0
	cfg.PtsSecondChanceVariance.StdDev = 0

	sim := NewGameSimulator(cfg, rand.NewSource(4))
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	first := sim.Simulate(home, away, -3.5)
	for i := 0; i < 10; i++ {
		game := sim.Simulate(home, away, -3.5)
		if game != first {
			t.Fatalf("zero-noise simulation should be deterministic: %+v vs %+v", game, first)
		}
	}
	// Home court advantage plus the better ratings must show up.
	if first.Margin <= 0 {
		t.Fatalf("expected positive deterministic margin, got %d", first.Margin)
	}
}

func TestSimulateHomeCourtAdvantageShiftsMargin(t *testing.T) {
	withHCA := DefaultConfig()
	withoutHCA := DefaultConfig()
	withoutHCA.HomeCourtAdvantage = 0

	home := testProfile("Team A", 100, 112, 112)
	away := testProfile("Team B", 100, 112, 112)

	simWith := NewGameSimulator(withHCA, rand.NewSource(5))
	simWithout := NewGameSimulator(withoutHCA, rand.NewSource(5))

	var sumWith, sumWithout float64
	const trials = 20000
	for i := 0; i < trials; i++ {
		sumWith += float64(simWith.Simulate(home, away, 0).Margin)
		sumWithout += float64(simWithout.Simulate(home, away, 0).Margin)
	}

	if sumWith/trials <= sumWithout/trials {
		t.Fatalf("home court advantage should raise the average margin: %f vs %f",
			sumWith/trials, sumWithout/trials)
	}
}

func TestEfficiencyMultiplierStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	sim := NewGameSimulator(cfg, rand.NewSource(6))

	// Extreme elite offense against a terrible defense.
	off := testProfile("Elite", 100, 125, 100)
	off.Stats.EFGPct = 0.62
	off.Stats.TOVPct = 0.09
	off.Stats.OREBPct = 0.35
	def := testProfile("Poor", 100, 100, 125)
	def.Stats.OppEFGPct = 0.62
	def.Stats.OppTOVPct = 0.09
	def.Stats.OppOREBPct = 0.35

	for i := 0; i < 1000; i++ {
		m := sim.efficiencyMultiplier(&off.Stats, &def.Stats)
		if m < cfg.MultiplierMin || m > cfg.MultiplierMax {
			t.Fatalf("multiplier %f outside [%f, %f]", m, cfg.MultiplierMin, cfg.MultiplierMax)
		}
	}
}
