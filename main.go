package main

import (
	"fmt"
	"os"

	"dbouncer/internal/bot"
	"dbouncer/internal/bouncer"
	"dbouncer/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	// Read configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(fmt.Sprintf("Could not load configuration: %s", err))
	}

	// Logging
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Msg(fmt.Sprintf("Log level %s is not valid", cfg.LogLevel))
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Create the bouncer cog
	dbouncer, err := bouncer.NewBouncer(bouncer.Criteria{
		MaxGuilds:   cfg.MaxGuilds,
		MinMembers:  cfg.MinMembers,
		MaxMembers:  cfg.MaxMembers,
		MaxBotRatio: cfg.MaxBotRatio,
		MinGuildAge: cfg.MinGuildAge,
		Recheck:     cfg.Recheck,
	})
	if err != nil {
		log.Fatal().Msg(fmt.Sprintf("Could not create bouncer: %s", err))
	}
	defer dbouncer.Unregister()

	// Create and run the bot
	discordBot := bot.NewBot(cfg.DiscordToken)
	discordBot.AddCog(dbouncer)
	if err := discordBot.Run(); err != nil {
		log.Fatal().Msg(fmt.Sprintf("Bot stopped with an error: %s", err))
	}
}
