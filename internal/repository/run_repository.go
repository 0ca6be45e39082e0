package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/courtside-edge/internal/database"
	"github.com/yourusername/courtside-edge/internal/models"
)

// PostgresBacktestRunRepository implements BacktestRunRepository for PostgreSQL
type PostgresBacktestRunRepository struct {
	db *database.DB
}

// NewPostgresBacktestRunRepository creates a new backtest run repository
func NewPostgresBacktestRunRepository(db *database.DB) BacktestRunRepository {
	return &PostgresBacktestRunRepository{db: db}
}

// SaveRun inserts a backtest run summary
func (r *PostgresBacktestRunRepository) SaveRun(ctx context.Context, run *models.BacktestRun) error {
	query := `
		INSERT INTO backtest_runs (
			id, run_date, seasons, simulations, seed, min_edge,
			games_processed, bets_placed, wins, losses, pushes,
			hit_rate, roi, ev_per_unit, max_drawdown, total_staked,
			net_profit, elapsed_seconds, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		run.ID, run.RunDate, run.Seasons, run.Simulations, run.Seed, run.MinEdge,
		run.GamesProcessed, run.BetsPlaced, run.Wins, run.Losses, run.Pushes,
		run.HitRate, run.ROI, run.EVPerUnit, run.MaxDrawdown, run.TotalStaked,
		run.NetProfit, run.ElapsedSeconds, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save backtest run: %w", err)
	}
	return nil
}

// GetByID retrieves one backtest run by its ID
func (r *PostgresBacktestRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BacktestRun, error) {
	query := `
		SELECT id, run_date, seasons, simulations, seed, min_edge,
			games_processed, bets_placed, wins, losses, pushes,
			hit_rate, roi, ev_per_unit, max_drawdown, total_staked,
			net_profit, elapsed_seconds, created_at
		FROM backtest_runs WHERE id = $1
	`

	run := &models.BacktestRun{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&run.ID, &run.RunDate, &run.Seasons, &run.Simulations, &run.Seed, &run.MinEdge,
		&run.GamesProcessed, &run.BetsPlaced, &run.Wins, &run.Losses, &run.Pushes,
		&run.HitRate, &run.ROI, &run.EVPerUnit, &run.MaxDrawdown, &run.TotalStaked,
		&run.NetProfit, &run.ElapsedSeconds, &run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest run: %w", err)
	}
	return run, nil
}

// ListRecent retrieves the most recent backtest runs
func (r *PostgresBacktestRunRepository) ListRecent(ctx context.Context, limit int) ([]*models.BacktestRun, error) {
	query := `
		SELECT id, run_date, seasons, simulations, seed, min_edge,
			games_processed, bets_placed, wins, losses, pushes,
			hit_rate, roi, ev_per_unit, max_drawdown, total_staked,
			net_profit, elapsed_seconds, created_at
		FROM backtest_runs ORDER BY run_date DESC LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query backtest runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.BacktestRun
	for rows.Next() {
		run := &models.BacktestRun{}
		if err := rows.Scan(
			&run.ID, &run.RunDate, &run.Seasons, &run.Simulations, &run.Seed, &run.MinEdge,
			&run.GamesProcessed, &run.BetsPlaced, &run.Wins, &run.Losses, &run.Pushes,
			&run.HitRate, &run.ROI, &run.EVPerUnit, &run.MaxDrawdown, &run.TotalStaked,
			&run.NetProfit, &run.ElapsedSeconds, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan backtest run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backtest runs: %w", err)
	}
	return runs, nil
}
