package bouncer

import (
	"fmt"
	"time"

	"dbouncer/internal/common"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GuildCreate fires both for genuine joins and for every already joined
// guild replayed by the gateway on (re)connect. Joins are told apart by
// how recently the bot became a member
const joinWindow = time.Minute

// The slice of the discord session the bouncer needs: the list of
// currently joined guilds and the leave action
type Session interface {
	Guilds() []*discordgo.Guild
	GuildLeave(guildid string) error
}

type discordSession struct {
	discord *discordgo.Session
}

func (s discordSession) Guilds() []*discordgo.Guild {
	return s.discord.State.Guilds
}

func (s discordSession) GuildLeave(guildid string) error {
	return s.discord.GuildLeave(guildid)
}

// The bouncer leaves guilds that do not satisfy the configured criteria.
// All hooks are optional; leaving one nil gives the default behavior
// (guilds are not whitelisted, no extra criteria, leaves are silent)
type Bouncer struct {
	criteria Criteria

	// Report a guild as exempt from the criteria
	Whitelisted func(guild GuildSnapshot) bool
	// Additional criteria; returning true marks the guild ineligible
	ExtraCriteria func(guild GuildSnapshot) bool
	// Called right before an ineligible guild is left. Not called when
	// the guild ceiling is the reason for leaving
	BeforeLeave func(guild GuildSnapshot, joined bool)
	// Called after a guild has been left
	AfterLeave func(guild GuildSnapshot, joined bool)
	// Called when a join pushes the guild count to the ceiling,
	// regardless of the eligibility of the new guild
	OnGuildLimitReached func(guild GuildSnapshot)

	loop *common.TaskLoop
}

func NewBouncer(criteria Criteria) (*Bouncer, error) {
	if criteria.MaxGuilds == 0 {
		criteria.MaxGuilds = DEFAULT_MAX_GUILDS
	}
	if err := criteria.validate(); err != nil {
		return nil, fmt.Errorf("invalid criteria: %w", err)
	}
	return &Bouncer{criteria: criteria}, nil
}

func (bouncer *Bouncer) Name() string {
	return "bouncer"
}

// Attach the event handlers and, if a recheck interval is configured,
// start the periodic sweep over joined guilds
func (bouncer *Bouncer) Register(discord *discordgo.Session) error {

	session := discordSession{discord}
	discord.AddHandler(func(d *discordgo.Session, event *discordgo.GuildCreate) {
		bouncer.onGuildCreate(session, event)
	})
	discord.AddHandler(func(d *discordgo.Session, message *discordgo.MessageCreate) {
		bouncer.onMessage(d, session, message)
	})

	if bouncer.criteria.Recheck > 0 {
		log.Info().Msg(fmt.Sprintf("Rechecking guilds every %s", bouncer.criteria.Recheck))
		bouncer.loop = common.NewTaskLoop(bouncer.criteria.Recheck, func() { bouncer.CheckGuilds(session) })
		bouncer.loop.Start()
	}
	return nil
}

// Stop the periodic sweep, if one is running
func (bouncer *Bouncer) Unregister() {
	if bouncer.loop != nil {
		bouncer.loop.Stop()
		bouncer.loop = nil
	}
}

// Decide whether a guild should be left. A guild is left when it breaks
// any of the configured thresholds, or the extra criteria flag it, and
// it is not whitelisted
func (bouncer *Bouncer) ShouldLeave(guild GuildSnapshot) bool {

	if bouncer.Whitelisted != nil && bouncer.Whitelisted(guild) {
		return false
	}

	criteria := &bouncer.criteria
	switch {
	case criteria.tooFewMembers(guild):
		log.Info().Msg(fmt.Sprintf("Guild %s has %d members, fewer than the minimum %d", guild.Id, guild.MemberCount, criteria.MinMembers))
	case criteria.tooManyMembers(guild):
		log.Info().Msg(fmt.Sprintf("Guild %s has %d members, more than the maximum %d", guild.Id, guild.MemberCount, criteria.MaxMembers))
	case criteria.tooManyBots(guild):
		log.Info().Msg(fmt.Sprintf("Guild %s has %d bots among %d members", guild.Id, guild.BotCount, guild.MemberCount))
	case criteria.tooYoung(guild):
		log.Info().Msg(fmt.Sprintf("Guild %s was created %s ago, minimum age is %s", guild.Id, time.Since(guild.CreatedAt), criteria.MinGuildAge))
	case bouncer.ExtraCriteria != nil && bouncer.ExtraCriteria(guild):
		log.Info().Msg(fmt.Sprintf("Guild %s flagged by extra criteria", guild.Id))
	default:
		return false
	}
	return true
}

// Handle a newly joined guild. If the join pushes the guild count to the
// ceiling, the guild is left no matter what. Otherwise it is left only
// if it fails the criteria
func (bouncer *Bouncer) OnGuildJoin(session Session, guild *discordgo.Guild) {

	snapshot := TakeSnapshot(guild)
	log.Info().Msg(fmt.Sprintf("Joined guild %s (%s) with %d members", snapshot.Name, snapshot.Id, snapshot.MemberCount))

	if len(session.Guilds()) >= bouncer.criteria.MaxGuilds {
		log.Warn().Msg(fmt.Sprintf("Guild ceiling of %d reached, leaving guild %s", bouncer.criteria.MaxGuilds, snapshot.Id))
		if bouncer.OnGuildLimitReached != nil {
			bouncer.OnGuildLimitReached(snapshot)
		}
		bouncer.leaveQuietly(session, snapshot, true)
		return
	}

	if bouncer.ShouldLeave(snapshot) {
		bouncer.leave(session, snapshot, true)
	}
}

// Sweep all joined guilds and leave the ineligible ones, one at a time.
// Returns the number of guilds left
func (bouncer *Bouncer) CheckGuilds(session Session) int {

	sweepid := uuid.New()
	guilds := session.Guilds()
	log.Debug().Msg(fmt.Sprintf("Sweep %s checking %d guilds", sweepid, len(guilds)))

	left := 0
	for _, guild := range guilds {
		snapshot := TakeSnapshot(guild)
		if bouncer.ShouldLeave(snapshot) {
			bouncer.leave(session, snapshot, false)
			left++
		}
	}
	log.Debug().Msg(fmt.Sprintf("Sweep %s left %d guilds", sweepid, left))
	return left
}

func (bouncer *Bouncer) onGuildCreate(session Session, event *discordgo.GuildCreate) {

	if event.Guild.Unavailable {
		log.Debug().Msg(fmt.Sprintf("Guild %s is unavailable", event.ID))
		return
	}

	// Replayed guilds are only re-evaluated by the periodic sweep
	if time.Since(event.Guild.JoinedAt) > joinWindow {
		log.Debug().Msg(fmt.Sprintf("Guild %s replayed by the gateway", event.ID))
		return
	}

	bouncer.OnGuildJoin(session, event.Guild)
}

// Leave a guild, running the before and after hooks
func (bouncer *Bouncer) leave(session Session, guild GuildSnapshot, joined bool) {
	if bouncer.BeforeLeave != nil {
		bouncer.BeforeLeave(guild, joined)
	}
	bouncer.leaveQuietly(session, guild, joined)
}

// Leave a guild without the before hook. The after hook still runs,
// but only if the leave succeeded
func (bouncer *Bouncer) leaveQuietly(session Session, guild GuildSnapshot, joined bool) {
	if err := session.GuildLeave(guild.Id); err != nil {
		log.Error().Msg(fmt.Sprintf("Could not leave guild %s: %s", guild.Id, err))
		return
	}
	log.Info().Msg(fmt.Sprintf("Left guild %s (%s)", guild.Name, guild.Id))
	if bouncer.AfterLeave != nil {
		bouncer.AfterLeave(guild, joined)
	}
}

func (bouncer *Bouncer) onMessage(discord *discordgo.Session, session Session, message *discordgo.MessageCreate) {

	// Reject my own messages
	if message.Author.ID == discord.State.User.ID {
		return
	}

	// Ignore messages from private channels
	if message.GuildID == "" {
		log.Debug().Msg("Ignoring private message")
		return
	}

	parseResult := Parse(message.Content)
	switch parseResult.parseid {
	case PARSEID_NO_BOT_PREFIX:
		return
	case PARSEID_OK:
		log.Info().Msg(fmt.Sprintf("Command understood: %s", message.Content))
		var responses []Response
		switch parseResult.command {
		case COMMAND_STATUS:
			responses = StatusMessage(bouncer.criteria, len(session.Guilds()))
		case COMMAND_CHECK:
			responses = SweepReport(bouncer.CheckGuilds(session))
		case COMMAND_HELP:
			responses = HelpMessage()
		default:
			panic(fmt.Sprintf("Command %d is not one of the possible ones", parseResult.command))
		}
		bouncer.sendResponses(discord, message.ChannelID, responses)
	default:
		log.Info().Msg(fmt.Sprintf("Wrong input: '%s'. Reason: %s", message.Content, parseResult.errorMessage))
		bouncer.sendResponses(discord, message.ChannelID, InputNotValid(parseResult.errorMessage))
	}
}

func (bouncer *Bouncer) sendResponses(discord *discordgo.Session, channelid string, responses []Response) {
	for _, response := range responses {
		response.Send(channelid, discord)
	}
}
