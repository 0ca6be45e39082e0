package models

import (
	"time"

	"github.com/google/uuid"
)

// BacktestRun is the persisted summary of one backtest execution.
type BacktestRun struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RunDate        time.Time `db:"run_date" json:"run_date"`
	Seasons        []int     `db:"seasons" json:"seasons"`
	Simulations    int       `db:"simulations" json:"simulations"`
	Seed           int64     `db:"seed" json:"seed"`
	MinEdge        float64   `db:"min_edge" json:"min_edge"`
	GamesProcessed int       `db:"games_processed" json:"games_processed"`
	BetsPlaced     int       `db:"bets_placed" json:"bets_placed"`
	Wins           int       `db:"wins" json:"wins"`
	Losses         int       `db:"losses" json:"losses"`
	Pushes         int       `db:"pushes" json:"pushes"`
	HitRate        float64   `db:"hit_rate" json:"hit_rate"`
	ROI            float64   `db:"roi" json:"roi"`
	EVPerUnit      float64   `db:"ev_per_unit" json:"ev_per_unit"`
	MaxDrawdown    float64   `db:"max_drawdown" json:"max_drawdown"`
	TotalStaked    float64   `db:"total_staked" json:"total_staked"`
	NetProfit      float64   `db:"net_profit" json:"net_profit"`
	ElapsedSeconds float64   `db:"elapsed_seconds" json:"elapsed_seconds"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
