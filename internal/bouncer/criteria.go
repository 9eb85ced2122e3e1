package bouncer

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Default guild ceiling. Discord requires verification above 100 guilds,
// and a few guilds can be joined in quick succession before the bouncer
// reacts, so leave a safety net below that number
const DEFAULT_MAX_GUILDS = 95

// Criteria are the thresholds a guild has to satisfy for the bot to stay
// in it. A zero value means the threshold is not enforced, except for
// MaxGuilds, which is always enforced. Criteria are fixed at construction
type Criteria struct {
	// Hard ceiling on the number of joined guilds
	MaxGuilds int
	// Minimum and maximum member count
	MinMembers int
	MaxMembers int
	// Maximum proportion of guild members that are bots, between 0 and 1
	MaxBotRatio float64
	// Minimum time since the guild was created
	MinGuildAge time.Duration
	// How often to re-check already joined guilds. Zero disables the sweep
	Recheck time.Duration
}

func (criteria *Criteria) validate() error {
	if criteria.MaxGuilds <= 0 {
		return fmt.Errorf("max guilds has to be positive, got %d", criteria.MaxGuilds)
	}
	if criteria.MinMembers < 0 || criteria.MaxMembers < 0 {
		return fmt.Errorf("member count thresholds cannot be negative")
	}
	if criteria.MaxMembers > 0 && criteria.MinMembers > criteria.MaxMembers {
		return fmt.Errorf("min members (%d) is greater than max members (%d)", criteria.MinMembers, criteria.MaxMembers)
	}
	if criteria.MaxBotRatio < 0 || criteria.MaxBotRatio > 1 {
		return fmt.Errorf("bot ratio has to be between 0 and 1, got %f", criteria.MaxBotRatio)
	}
	if criteria.MinGuildAge < 0 {
		return fmt.Errorf("min guild age cannot be negative")
	}
	if criteria.Recheck < 0 {
		return fmt.Errorf("recheck interval cannot be negative")
	}
	return nil
}

func (criteria *Criteria) tooFewMembers(guild GuildSnapshot) bool {
	return criteria.MinMembers > 0 && guild.MemberCount < criteria.MinMembers
}

func (criteria *Criteria) tooManyMembers(guild GuildSnapshot) bool {
	return criteria.MaxMembers > 0 && guild.MemberCount > criteria.MaxMembers
}

func (criteria *Criteria) tooManyBots(guild GuildSnapshot) bool {
	if criteria.MaxBotRatio == 0 || guild.MemberCount == 0 {
		return false
	}
	return float64(guild.BotCount)/float64(guild.MemberCount) > criteria.MaxBotRatio
}

func (criteria *Criteria) tooYoung(guild GuildSnapshot) bool {
	return criteria.MinGuildAge > 0 && time.Since(guild.CreatedAt) < criteria.MinGuildAge
}

// A guild snapshot holds the handful of guild fields the criteria
// are evaluated against
type GuildSnapshot struct {
	Id          string
	Name        string
	MemberCount int
	BotCount    int
	CreatedAt   time.Time
}

// Take a snapshot of a guild as the host framework sees it right now.
// The bot count is derived from the member list, which is only complete
// when the members intent is enabled
func TakeSnapshot(guild *discordgo.Guild) GuildSnapshot {

	bots := 0
	for _, member := range guild.Members {
		if member.User != nil && member.User.Bot {
			bots++
		}
	}

	createdAt, err := discordgo.SnowflakeTimestamp(guild.ID)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("Could not extract creation time from guild id %s", guild.ID))
	}

	return GuildSnapshot{
		Id:          guild.ID,
		Name:        guild.Name,
		MemberCount: guild.MemberCount,
		BotCount:    bots,
		CreatedAt:   createdAt,
	}
}
