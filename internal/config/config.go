package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains everything the bot reads from the environment.
// Thresholds left unset keep their zero value, which disables them
type Config struct {
	// DiscordToken is the bot token used for authentication
	DiscordToken string `env:"DBOUNCER_DISCORD_TOKEN,required"`

	// MaxGuilds is the hard ceiling on the number of joined guilds
	MaxGuilds int `env:"DBOUNCER_MAX_GUILDS" envDefault:"95"`

	// MinMembers and MaxMembers bound the guild member count
	MinMembers int `env:"DBOUNCER_MIN_MEMBERS"`
	MaxMembers int `env:"DBOUNCER_MAX_MEMBERS"`

	// MaxBotRatio is the maximum proportion of members that are bots
	MaxBotRatio float64 `env:"DBOUNCER_MAX_BOT_RATIO"`

	// MinGuildAge is the minimum time since guild creation
	MinGuildAge time.Duration `env:"DBOUNCER_MIN_GUILD_AGE"`

	// Recheck is how often joined guilds are re-evaluated.
	// Unset disables the periodic check
	Recheck time.Duration `env:"DBOUNCER_RECHECK"`

	// LogLevel is a zerolog level name
	LogLevel string `env:"DBOUNCER_LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
