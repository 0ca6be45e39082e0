package backtest

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func record(date string, result BetResult, profit string, ev float64) BetRecord {
	return BetRecord{
		Date:    date,
		GameKey: date + ":BOS:MIA",
		Stake:   decimal.NewFromInt(1),
		Result:  result,
		Profit:  decimal.RequireFromString(profit),
		EV:      ev,
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil)

	if m.BetsPlaced != 0 || m.Wins != 0 || m.Losses != 0 || m.Pushes != 0 {
		t.Fatalf("expected zero counts, got %+v", m)
	}
	if !m.TotalStaked.IsZero() || !m.NetProfit.IsZero() {
		t.Fatalf("expected zero money totals, got staked=%s profit=%s", m.TotalStaked, m.NetProfit)
	}
	if m.HitRate != 0 || m.ROI != 0 || m.MaxDrawdown != 0 {
		t.Fatalf("expected zero ratios, got %+v", m)
	}
}

func TestComputeMetricsHitRateExcludesPushes(t *testing.T) {
	bets := []BetRecord{
		record("2024-01-01", BetWin, "0.91", 0.05),
		record("2024-01-02", BetLoss, "-1", 0.02),
		record("2024-01-03", BetPush, "0", 0.00),
		record("2024-01-04", BetWin, "0.91", 0.03),
	}

	m := ComputeMetrics(bets)

	if m.BetsPlaced != 4 || m.Wins != 2 || m.Losses != 1 || m.Pushes != 1 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if want := 2.0 / 3.0; math.Abs(m.HitRate-want) > 1e-12 {
		t.Fatalf("hit rate should exclude pushes: got %f want %f", m.HitRate, want)
	}
	if !m.TotalStaked.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("total staked = %s, want 4", m.TotalStaked)
	}
	if !m.NetProfit.Equal(decimal.RequireFromString("0.82")) {
		t.Fatalf("net profit = %s, want 0.82", m.NetProfit)
	}
	if want := 0.205; math.Abs(m.ROI-want) > 1e-12 {
		t.Fatalf("roi = %f, want %f", m.ROI, want)
	}
	if want := 0.025; math.Abs(m.EVPerUnit-want) > 1e-12 {
		t.Fatalf("ev per unit = %f, want %f", m.EVPerUnit, want)
	}
}

func TestComputeMetricsMaxDrawdown(t *testing.T) {
	// Cumulative profit path: 0.91, -0.09, -1.09, -0.18. Peak 0.91, so the
	// deepest trough is 2.00 units below it.
	bets := []BetRecord{
		record("2024-01-01", BetWin, "0.91", 0.05),
		record("2024-01-02", BetLoss, "-1", 0.01),
		record("2024-01-03", BetLoss, "-1", 0.01),
		record("2024-01-04", BetWin, "0.91", 0.04),
	}

	m := ComputeMetrics(bets)

	if want := 2.0; math.Abs(m.MaxDrawdown-want) > 1e-12 {
		t.Fatalf("max drawdown = %f, want %f", m.MaxDrawdown, want)
	}
}

func TestComputeMetricsAllPushes(t *testing.T) {
	bets := []BetRecord{
		record("2024-01-01", BetPush, "0", 0.01),
		record("2024-01-02", BetPush, "0", 0.02),
	}

	m := ComputeMetrics(bets)

	if m.HitRate != 0 {
		t.Fatalf("hit rate with no decided bets should be 0, got %f", m.HitRate)
	}
	if m.ROI != 0 {
		t.Fatalf("roi with zero profit should be 0, got %f", m.ROI)
	}
}
