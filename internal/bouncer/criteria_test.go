package bouncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldLeave_MinMembers(t *testing.T) {
	guild := GuildSnapshot{Id: "1", MemberCount: 3, CreatedAt: time.Now().Add(-24 * time.Hour)}

	bouncer, err := NewBouncer(Criteria{MinMembers: 5})
	require.NoError(t, err)
	assert.True(t, bouncer.ShouldLeave(guild))

	// Unset minimum never triggers
	bouncer, err = NewBouncer(Criteria{})
	require.NoError(t, err)
	assert.False(t, bouncer.ShouldLeave(guild))
}

func TestShouldLeave_MaxMembers(t *testing.T) {
	guild := GuildSnapshot{Id: "1", MemberCount: 500, CreatedAt: time.Now().Add(-24 * time.Hour)}

	bouncer, err := NewBouncer(Criteria{MaxMembers: 100})
	require.NoError(t, err)
	assert.True(t, bouncer.ShouldLeave(guild))

	bouncer, err = NewBouncer(Criteria{})
	require.NoError(t, err)
	assert.False(t, bouncer.ShouldLeave(guild))
}

func TestShouldLeave_BotRatio(t *testing.T) {
	bouncer, err := NewBouncer(Criteria{MaxBotRatio: 0.5})
	require.NoError(t, err)

	// 6 bots among 10 members
	guild := GuildSnapshot{Id: "1", MemberCount: 10, BotCount: 6, CreatedAt: time.Now().Add(-24 * time.Hour)}
	assert.True(t, bouncer.ShouldLeave(guild))

	// Exactly at the ratio is allowed
	guild.BotCount = 5
	assert.False(t, bouncer.ShouldLeave(guild))

	// A guild with no visible members cannot break the ratio
	guild = GuildSnapshot{Id: "2", MemberCount: 0, BotCount: 0, CreatedAt: time.Now().Add(-24 * time.Hour)}
	assert.False(t, bouncer.ShouldLeave(guild))
}

func TestShouldLeave_GuildAge(t *testing.T) {
	bouncer, err := NewBouncer(Criteria{MinGuildAge: 7 * 24 * time.Hour})
	require.NoError(t, err)

	young := GuildSnapshot{Id: "1", MemberCount: 10, CreatedAt: time.Now().Add(-time.Hour)}
	assert.True(t, bouncer.ShouldLeave(young))

	old := GuildSnapshot{Id: "2", MemberCount: 10, CreatedAt: time.Now().Add(-30 * 24 * time.Hour)}
	assert.False(t, bouncer.ShouldLeave(old))
}

func TestShouldLeave_WhitelistWins(t *testing.T) {
	bouncer, err := NewBouncer(Criteria{MinMembers: 100, MaxBotRatio: 0.1})
	require.NoError(t, err)
	bouncer.Whitelisted = func(guild GuildSnapshot) bool { return guild.Id == "keep" }

	guild := GuildSnapshot{Id: "keep", MemberCount: 1, BotCount: 1, CreatedAt: time.Now()}
	assert.False(t, bouncer.ShouldLeave(guild))

	guild.Id = "other"
	assert.True(t, bouncer.ShouldLeave(guild))
}

func TestShouldLeave_ExtraCriteria(t *testing.T) {
	bouncer, err := NewBouncer(Criteria{})
	require.NoError(t, err)
	bouncer.ExtraCriteria = func(guild GuildSnapshot) bool { return guild.Name == "spam" }

	assert.True(t, bouncer.ShouldLeave(GuildSnapshot{Id: "1", Name: "spam", MemberCount: 10}))
	assert.False(t, bouncer.ShouldLeave(GuildSnapshot{Id: "2", Name: "fine", MemberCount: 10}))
}

func TestNewBouncer_Validation(t *testing.T) {
	cases := []Criteria{
		{MaxGuilds: -1},
		{MinMembers: -5},
		{MaxMembers: -5},
		{MinMembers: 10, MaxMembers: 5},
		{MaxBotRatio: 1.5},
		{MaxBotRatio: -0.1},
		{MinGuildAge: -time.Hour},
		{Recheck: -time.Minute},
	}
	for _, criteria := range cases {
		_, err := NewBouncer(criteria)
		assert.Error(t, err, "criteria %+v should be rejected", criteria)
	}

	// The zero value gets the default ceiling
	bouncer, err := NewBouncer(Criteria{})
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_MAX_GUILDS, bouncer.criteria.MaxGuilds)
}
