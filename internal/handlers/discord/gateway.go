package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// VoiceGateway moves the bot in and out of guild voice channels by issuing
// gateway voice state updates. Audio itself is rendered by the remote node,
// so no local voice connection is opened.
type VoiceGateway struct {
	session *discordgo.Session
}

// NewVoiceGateway creates a voice gateway on top of a Discord session
func NewVoiceGateway(session *discordgo.Session) *VoiceGateway {
	return &VoiceGateway{session: session}
}

// JoinVoice connects the bot to a guild voice channel
func (g *VoiceGateway) JoinVoice(ctx context.Context, guildID, channelID string) error {
	if err := g.session.ChannelVoiceJoinManual(guildID, channelID, false, false); err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}

	return nil
}

// LeaveVoice disconnects the bot from the guild's voice channel
func (g *VoiceGateway) LeaveVoice(ctx context.Context, guildID string) error {
	if err := g.session.ChannelVoiceJoinManual(guildID, "", false, false); err != nil {
		return fmt.Errorf("failed to leave voice channel: %w", err)
	}

	return nil
}
