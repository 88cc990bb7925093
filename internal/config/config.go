package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Table stores understood by TableStore
const (
	TableStoreRedis  = "redis"
	TableStoreSQLite = "sqlite"
)

// Config holds the settings shared by the hog CLI and the Discord bot
type Config struct {
	RedisAddr     string `env:"HOG_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"HOG_REDIS_PASSWORD"`

	// TableStore picks where precomputed tables are kept
	TableStore string `env:"HOG_TABLE_STORE" envDefault:"sqlite"`
	SQLitePath string `env:"HOG_SQLITE_PATH" envDefault:"hog.db"`

	Samples   int   `env:"HOG_SAMPLES" envDefault:"10000"`
	GoalScore int   `env:"HOG_GOAL_SCORE" envDefault:"100"`
	Trace     bool  `env:"HOG_TRACE"`
	Seed      int64 `env:"HOG_SEED"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Load reads an optional .env file from each path, then parses the
// environment. Variables already set win over the files.
func Load(paths ...string) (*Config, error) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that the environment cannot express
func (c *Config) Validate() error {
	switch c.TableStore {
	case TableStoreRedis, TableStoreSQLite:
	default:
		return fmt.Errorf("unknown table store %q", c.TableStore)
	}
	if c.TableStore == TableStoreSQLite && c.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.GoalScore <= 0 {
		return fmt.Errorf("goal score must be positive, got %d", c.GoalScore)
	}
	return nil
}
