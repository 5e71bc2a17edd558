package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "MATCH_NIGHT_CONFIG"
	portEnv       = "PORT"
)

// Config holds the tunables for the auction ledger, the scoring pipeline and
// the snapshot store. All values have working defaults; a yaml file pointed at
// by MATCH_NIGHT_CONFIG overrides them.
type Config struct {
	Port     string         `yaml:"port"`
	Auction  AuctionConfig  `yaml:"auction"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Events   EventsConfig   `yaml:"events"`
}

// AuctionConfig describes ledger constants.
type AuctionConfig struct {
	MinIncrement    int `yaml:"minIncrement"`
	StartingBalance int `yaml:"startingBalance"`
}

// ScoringConfig describes the affinity/selection constants.
type ScoringConfig struct {
	LikeCap    int    `yaml:"likeCap"`
	ScoreFloor int    `yaml:"scoreFloor"`
	TopN       int    `yaml:"topN"`
	Policy     string `yaml:"policy"` // "live" or "final"
}

// SnapshotConfig describes report snapshot expiry.
type SnapshotConfig struct {
	TTLHours int `yaml:"ttlHours"`
}

// TTL returns the snapshot time-to-live as a duration.
func (s SnapshotConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// EventsConfig describes the domain-event fan-out. Empty brokers selects the
// log publisher.
type EventsConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port: ":8080",
		Auction: AuctionConfig{
			MinIncrement:    100,
			StartingBalance: 10000,
		},
		Scoring: ScoringConfig{
			LikeCap:    5,
			ScoreFloor: 20,
			TopN:       3,
			Policy:     "live",
		},
		Snapshot: SnapshotConfig{
			TTLHours: 24,
		},
		Events: EventsConfig{
			Topic: "match-night.events",
		},
	}
}

// Load reads the config file named by MATCH_NIGHT_CONFIG over the defaults.
// A missing env var is not an error; a present-but-unreadable file is.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv(configPathEnv)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if p := os.Getenv(portEnv); p != "" {
		cfg.Port = fmt.Sprintf(":%s", p)
	}

	return cfg, nil
}
