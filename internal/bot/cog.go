package bot

import "github.com/bwmarrin/discordgo"

// A cog is a self-contained piece of bot behavior. Register is called
// once, after the session is created and before it is opened, so the
// cog can attach its event handlers and start its background work
type Cog interface {
	Name() string
	Register(discord *discordgo.Session) error
}
