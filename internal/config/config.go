package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot's runtime configuration, read from the environment
type Config struct {
	// DiscordToken authenticates the gateway connection
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// CommandPrefix marks chat messages as commands
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// LavalinkHost is the host:port of the audio node
	LavalinkHost string `env:"LAVALINK_HOST,required,notEmpty"`

	// LavalinkAuthorization is the audio node's password
	LavalinkAuthorization string `env:"LAVALINK_AUTHORIZATION,required,notEmpty"`

	// RedisAddr enables the track resolution cache when set
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword for the cache connection
	RedisPassword string `env:"REDIS_PASSWORD"`

	// TrackCacheTTL bounds how long cached resolutions stay valid
	TrackCacheTTL time.Duration `env:"TRACK_CACHE_TTL" envDefault:"1h"`

	// TaskTimeout bounds each dispatched command or notification task
	TaskTimeout time.Duration `env:"TASK_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from a .env file, when present, and the process
// environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
