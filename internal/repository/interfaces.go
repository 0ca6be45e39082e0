// Package repository provides persistence for backtest run history.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/courtside-edge/internal/models"
)

// BacktestRunRepository stores and retrieves backtest run summaries.
type BacktestRunRepository interface {
	SaveRun(ctx context.Context, run *models.BacktestRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BacktestRun, error)
	ListRecent(ctx context.Context, limit int) ([]*models.BacktestRun, error)
}
