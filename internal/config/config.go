// Package config provides configuration management for the Courtside Edge
// application.
package config

import "fmt"

// Config is the root application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Betting    BettingConfig    `mapstructure:"betting" validate:"required"`
	Backtest   BacktestConfig   `mapstructure:"backtest" validate:"required"`
	Datasource DatasourceConfig `mapstructure:"datasource" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Health     HealthConfig     `mapstructure:"health"`
	Secrets    SecretsConfig    `mapstructure:"secrets"`
}

// AppConfig contains application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig contains PostgreSQL connection settings. The database is
// only required for backtest run persistence; live analysis runs without it.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// Enabled reports whether a database connection is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// SimulationConfig contains Monte Carlo engine settings
type SimulationConfig struct {
	DefaultSimulations   int     `mapstructure:"default_simulations" validate:"required,gt=0"`
	HighPrecisionEnabled bool    `mapstructure:"high_precision_enabled"`
	BatchSize            int     `mapstructure:"batch_size" validate:"required,gt=0"`
	RecencyWeight        float64 `mapstructure:"recency_weight" validate:"gte=0,lte=1"`
	HomeCourtAdvantage   float64 `mapstructure:"home_court_advantage" validate:"gte=0"`
	LeagueAvgORtg        float64 `mapstructure:"league_avg_ortg" validate:"required,gt=0"`
}

// BettingConfig contains decision thresholds
type BettingConfig struct {
	BetEdgeThreshold  float64 `mapstructure:"bet_edge_threshold" validate:"required,gt=0"`
	LeanEdgeThreshold float64 `mapstructure:"lean_edge_threshold" validate:"required,gte=0"`
}

// BacktestConfig contains historical replay settings
type BacktestConfig struct {
	Seasons        []int   `mapstructure:"seasons" validate:"required,min=1"`
	Simulations    int     `mapstructure:"simulations" validate:"required,gt=0"`
	Seed           int64   `mapstructure:"seed"`
	MinEdge        float64 `mapstructure:"min_edge" validate:"gte=0"`
	MaxBetsPerDay  int     `mapstructure:"max_bets_per_day" validate:"required,gt=0"`
	UnitStake      float64 `mapstructure:"unit_stake" validate:"required,gt=0"`
	DefaultOdds    float64 `mapstructure:"default_odds" validate:"required,gt=1"`
	SeasonWorkers  int     `mapstructure:"season_workers" validate:"required,gt=0"`
	DatasetDir     string  `mapstructure:"dataset_dir" validate:"required"`
	Schedule       string  `mapstructure:"schedule"`
	PersistResults bool    `mapstructure:"persist_results"`
}

// DatasourceConfig contains the historical stats provider settings
type DatasourceConfig struct {
	BaseURL           string  `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey            string  `mapstructure:"api_key"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts     int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimitPerSec   float64 `mapstructure:"rate_limit_per_sec" validate:"required,gt=0"`
	CacheTTLSeconds   int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheSweepSeconds int     `mapstructure:"cache_sweep_seconds" validate:"required,gt=0"`
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// HealthConfig contains health endpoint settings
type HealthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// SecretsConfig points at the AWS Secrets Manager overlay
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}
