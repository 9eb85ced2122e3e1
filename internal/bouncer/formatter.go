package bouncer

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Use "teal" color for the bot
const color int = 0x008080

func InputNotValid(errorMessage string) []Response {

	return []Response{ResponseString{fmt.Sprintf("Input not valid: \n> %s", errorMessage)}}
}

func StatusMessage(criteria Criteria, guildCount int) []Response {

	embed := discordgo.MessageEmbed{Title: "Bouncer status", Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Guilds",
		Value:  fmt.Sprintf("%d of %d", guildCount, criteria.MaxGuilds),
		Inline: false,
	})
	threshold := func(name string, value string) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true})
	}
	if criteria.MinMembers > 0 {
		threshold("Minimum members", fmt.Sprintf("%d", criteria.MinMembers))
	}
	if criteria.MaxMembers > 0 {
		threshold("Maximum members", fmt.Sprintf("%d", criteria.MaxMembers))
	}
	if criteria.MaxBotRatio > 0 {
		threshold("Maximum bot ratio", fmt.Sprintf("%.2f", criteria.MaxBotRatio))
	}
	if criteria.MinGuildAge > 0 {
		threshold("Minimum guild age", criteria.MinGuildAge.String())
	}
	if criteria.Recheck > 0 {
		threshold("Recheck interval", criteria.Recheck.String())
	} else {
		threshold("Recheck interval", "disabled")
	}
	return []Response{ResponseEmbed{embed}}
}

func SweepReport(left int) []Response {

	switch left {
	case 0:
		return []Response{ResponseString{"Checked all guilds, no guild left"}}
	case 1:
		return []Response{ResponseString{"Checked all guilds, left 1 guild"}}
	default:
		return []Response{ResponseString{fmt.Sprintf("Checked all guilds, left %d guilds", left)}}
	}
}

func HelpMessage() []Response {

	embed := discordgo.MessageEmbed{Title: "Commands available", Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "`bouncer status`",
		Value:  "Print the configured leave criteria and the current guild count",
		Inline: false,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "`bouncer check`",
		Value:  "Check all joined guilds against the leave criteria right now",
		Inline: false,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "`bouncer help`",
		Value:  "Print the usage of the different commands",
		Inline: false,
	})
	return []Response{ResponseEmbed{embed}}
}
