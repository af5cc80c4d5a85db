package config

import (
	"time"

	"github.com/gaze-network/orb-forge/internal/postgres"
)

const (
	DatabasePostgres = "postgres"
	DatabaseBadger   = "badger"
)

type Config struct {
	// Database selects the storage backend: "postgres" (default) or "badger".
	Database            string            `mapstructure:"database"`
	Postgres            postgres.Config   `mapstructure:"postgres"`
	Badger              BadgerConfig      `mapstructure:"badger"`
	Oracle              OracleConfig      `mapstructure:"oracle"`
	TokenLedger         TokenLedgerConfig `mapstructure:"token_ledger"`
	Bridge              BridgeConfig      `mapstructure:"bridge"`
	Events              EventsConfig      `mapstructure:"events"`
	API                 APIConfig         `mapstructure:"api"`
	GatingTokenDecimals uint8             `mapstructure:"gating_token_decimals"`
}

type BadgerConfig struct {
	Dir      string `mapstructure:"dir"`
	InMemory bool   `mapstructure:"in_memory"`
}

type OracleConfig struct {
	URL      string        `mapstructure:"url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type TokenLedgerConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

type BridgeConfig struct {
	RelayURL      string        `mapstructure:"relay_url"`
	APIKey        string        `mapstructure:"api_key"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	RateLimit     float64       `mapstructure:"rate_limit"` // submissions per second
	Burst         int           `mapstructure:"burst"`
	QueueSize     int           `mapstructure:"queue_size"`
}

type EventsConfig struct {
	// RedisURL enables republishing claim events to Redis when set.
	RedisURL string `mapstructure:"redis_url"`
	Channel  string `mapstructure:"channel"`
}

type APIConfig struct {
	RequireSignatures bool `mapstructure:"require_signatures"`
}

func Default() Config {
	return Config{
		Database: DatabasePostgres,
		Oracle: OracleConfig{
			CacheTTL: 5 * time.Minute,
		},
		Bridge: BridgeConfig{
			MaxAttempts:   10,
			SweepInterval: 30 * time.Second,
			RateLimit:     5,
			Burst:         5,
			QueueSize:     256,
		},
		Events: EventsConfig{
			Channel: "forge.claim_events",
		},
		API: APIConfig{
			RequireSignatures: true,
		},
		GatingTokenDecimals: 9,
	}
}
