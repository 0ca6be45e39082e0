package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
app:
  name: courtside-edge
  environment: development
  log_level: debug
simulation:
  default_simulations: 50000
  batch_size: 5000
  recency_weight: 0.25
  home_court_advantage: 2.0
  league_avg_ortg: 111.5
betting:
  bet_edge_threshold: 3.0
  lean_edge_threshold: 1.0
backtest:
  seasons: [2022, 2023]
  simulations: 10000
  min_edge: 3.0
  max_bets_per_day: 3
  unit_stake: 100
  default_odds: 1.91
  season_workers: 2
  dataset_dir: data/backtest
datasource:
  timeout_seconds: 15
  retry_attempts: 3
  rate_limit_per_sec: 4
  cache_ttl_seconds: 300
  cache_sweep_seconds: 600
`

func TestLoadParsesYAML(t *testing.T) {
	path := writeConfigFile(t, validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "courtside-edge", cfg.App.Name)
	assert.Equal(t, 50000, cfg.Simulation.DefaultSimulations)
	assert.Equal(t, 0.25, cfg.Simulation.RecencyWeight)
	assert.Equal(t, []int{2022, 2023}, cfg.Backtest.Seasons)
	require.NoError(t, Validate(cfg))
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_DATA_API_KEY", "secret-key-123")
	path := writeConfigFile(t, validYAML+`
  base_url: https://api.example.com
  api_key: ${TEST_DATA_API_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key-123", cfg.Datasource.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadWithDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 100000, cfg.Simulation.DefaultSimulations)
	assert.Equal(t, 3.0, cfg.Betting.BetEdgeThreshold)
	assert.Equal(t, 1.91, cfg.Backtest.DefaultOdds)
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	path := writeConfigFile(t, validYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.App.Environment = "qa"
	require.Error(t, Validate(cfg))
}

func TestValidateRejectsDisorderedThresholds(t *testing.T) {
	path := writeConfigFile(t, validYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Betting.LeanEdgeThreshold = 5.0
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lean_edge_threshold")
}

func TestValidateRejectsPersistenceWithoutDatabase(t *testing.T) {
	path := writeConfigFile(t, validYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Backtest.PersistResults = true
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "courtside",
		User: "edge", Password: "pw", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://edge:pw@localhost:5432/courtside?sslmode=disable", db.DSN())
	assert.True(t, db.Enabled())
	assert.False(t, DatabaseConfig{}.Enabled())
}
