package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Replier posts reply text to a channel; satisfied by *Messenger
type Replier interface {
	SendMessage(ctx context.Context, channelID, content string) error
}

// Messenger sends text messages through the Discord REST API. Sends share a
// single limiter so bursts of status updates stay under Discord's rate
// limits.
type Messenger struct {
	session *discordgo.Session
	limiter *rate.Limiter
}

// NewMessenger creates a messenger on top of a Discord session
func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{
		session: session,
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// SendMessage posts content to a channel, waiting for rate limit headroom
func (m *Messenger) SendMessage(ctx context.Context, channelID, content string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, err := m.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
