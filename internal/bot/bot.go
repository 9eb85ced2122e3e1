package bot

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Bot struct {
	token string
	cogs  []Cog
}

func NewBot(token string) Bot {
	return Bot{token: token}
}

func (bot *Bot) AddCog(cog Cog) {
	bot.cogs = append(bot.cogs, cog)
}

func (bot *Bot) Run() error {
	// Create session
	discord, err := discordgo.New("Bot " + bot.token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}

	// The bouncer needs the guild list, member counts and messages.
	// Member counts of already joined guilds go stale without the
	// members intent
	discord.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	// Register all cogs before opening the session
	for _, cog := range bot.cogs {
		log.Info().Msg(fmt.Sprintf("Registering cog %s", cog.Name()))
		if err := cog.Register(discord); err != nil {
			return fmt.Errorf("could not register cog %s: %w", cog.Name(), err)
		}
	}

	// Open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer discord.Close()

	// keep bot running until there is an os interruption (ctrl + C)
	log.Info().Msg("Bot is running")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	return nil
}
