package backtest

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/courtside-edge/internal/models"
)

// BetResult classifies one settled bet.
type BetResult string

const (
	// BetWin means the chosen side covered.
	BetWin BetResult = "WIN"
	// BetLoss means the chosen side did not cover.
	BetLoss BetResult = "LOSS"
	// BetPush means the game landed on the line and the stake was returned.
	BetPush BetResult = "PUSH"
)

// BetRecord is one simulated bet placed during a replay.
type BetRecord struct {
	Season   int             `json:"season"`
	Date     string          `json:"date"`
	GameKey  string          `json:"game_key"`
	Side     models.BetSide  `json:"side"`
	Line     float64         `json:"line"`
	Odds     float64         `json:"odds"`
	EdgePct  float64         `json:"edge_pct"`
	EV       float64         `json:"ev"`
	Stake    decimal.Decimal `json:"stake"`
	Result   BetResult       `json:"result"`
	Profit   decimal.Decimal `json:"profit"`
	WinProb  float64         `json:"win_prob"`
	PushProb float64         `json:"push_prob"`
}

// PerformanceMetrics aggregates the settled bets of a run. Money totals use
// exact decimal arithmetic; ratio statistics are float.
type PerformanceMetrics struct {
	BetsPlaced  int             `json:"bets_placed"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	Pushes      int             `json:"pushes"`
	HitRate     float64         `json:"hit_rate"`
	ROI         float64         `json:"roi"`
	EVPerUnit   float64         `json:"ev_per_unit"`
	MaxDrawdown float64         `json:"max_drawdown"`
	TotalStaked decimal.Decimal `json:"total_staked"`
	NetProfit   decimal.Decimal `json:"net_profit"`
}

// ComputeMetrics settles the record list into headline performance numbers.
// Bets must already be in chronological order for the drawdown calculation.
func ComputeMetrics(bets []BetRecord) PerformanceMetrics {
	m := PerformanceMetrics{
		TotalStaked: decimal.Zero,
		NetProfit:   decimal.Zero,
	}
	if len(bets) == 0 {
		return m
	}

	evs := make([]float64, 0, len(bets))
	cumulative := decimal.Zero
	peak := decimal.Zero
	maxDrawdown := decimal.Zero

	for _, bet := range bets {
		m.BetsPlaced++
		switch bet.Result {
		case BetWin:
			m.Wins++
		case BetLoss:
			m.Losses++
		case BetPush:
			m.Pushes++
		}
		m.TotalStaked = m.TotalStaked.Add(bet.Stake)
		m.NetProfit = m.NetProfit.Add(bet.Profit)
		evs = append(evs, bet.EV)

		cumulative = cumulative.Add(bet.Profit)
		if cumulative.GreaterThan(peak) {
			peak = cumulative
		}
		if drawdown := peak.Sub(cumulative); drawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = drawdown
		}
	}

	// Pushes return the stake and are excluded from the hit rate.
	if decided := m.Wins + m.Losses; decided > 0 {
		m.HitRate = float64(m.Wins) / float64(decided)
	}
	if m.TotalStaked.IsPositive() {
		m.ROI, _ = m.NetProfit.Div(m.TotalStaked).Float64()
	}
	m.EVPerUnit = stat.Mean(evs, nil)
	m.MaxDrawdown, _ = maxDrawdown.Float64()

	return m
}
