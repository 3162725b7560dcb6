package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/deejay/internal/resolver"
	"github.com/KirkDiggler/deejay/internal/services/player"
	"github.com/bwmarrin/discordgo"
)

// parseCommand splits a prefixed chat message into a command word and its
// arguments. ok is false when the message does not carry the prefix.
func parseCommand(prefix, content string) (command string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

func (b *Bot) handlePlay(ctx context.Context, m *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return b.reply(ctx, m, "Pass track as an argument")
	}

	channelID, err := b.lookupVoiceChannel(m.GuildID, m.Author.ID)
	if err != nil {
		return fmt.Errorf("failed to look up voice channel: %w", err)
	}

	if channelID == "" {
		return b.reply(ctx, m, "You need to join a voice channel first")
	}

	result, err := b.playerService.Play(ctx, &player.PlayInput{
		GuildID:    m.GuildID,
		ChannelID:  channelID,
		Identifier: strings.Join(args, " "),
	})
	if err != nil {
		return b.replyTrackError(ctx, m, err)
	}

	return b.reply(ctx, m, fmt.Sprintf("Playing **%s** by **%s**",
		result.Track.Info.Title, result.Track.Info.Author))
}

func (b *Bot) handleEnqueue(ctx context.Context, m *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return b.reply(ctx, m, "Pass track as an argument")
	}

	channelID, err := b.lookupVoiceChannel(m.GuildID, m.Author.ID)
	if err != nil {
		return fmt.Errorf("failed to look up voice channel: %w", err)
	}

	if channelID == "" {
		return b.reply(ctx, m, "You need to join a voice channel first")
	}

	result, err := b.playerService.Enqueue(ctx, &player.EnqueueInput{
		GuildID:    m.GuildID,
		ChannelID:  channelID,
		Identifier: strings.Join(args, " "),
	})
	if err != nil {
		return b.replyTrackError(ctx, m, err)
	}

	return b.reply(ctx, m, fmt.Sprintf("Added **%s** by **%s** to the queue",
		result.Track.Info.Title, result.Track.Info.Author))
}

func (b *Bot) handleStop(ctx context.Context, m *discordgo.MessageCreate) error {
	_, err := b.playerService.Stop(ctx, &player.StopInput{
		GuildID: m.GuildID,
	})
	if err != nil {
		return b.replyInternalError(ctx, m, err)
	}

	return nil
}

func (b *Bot) handleVolume(ctx context.Context, m *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return b.reply(ctx, m, "Pass volume value as an argument")
	}

	volume, err := strconv.Atoi(args[0])
	if err != nil {
		return b.reply(ctx, m, fmt.Sprintf("Volume value is invalid: %v", err))
	}

	result, err := b.playerService.SetVolume(ctx, &player.SetVolumeInput{
		GuildID: m.GuildID,
		Volume:  volume,
	})
	if err != nil {
		var oob *player.OutOfBoundsError
		if errors.As(err, &oob) {
			return b.reply(ctx, m, fmt.Sprintf("Invalid volume value: %v", oob))
		}

		return b.replyInternalError(ctx, m, err)
	}

	return b.reply(ctx, m, fmt.Sprintf("Volume was set to %d", result.Volume))
}

func (b *Bot) handleSeek(ctx context.Context, m *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return b.reply(ctx, m, "Pass seek position in milliseconds as an argument")
	}

	position, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return b.reply(ctx, m, fmt.Sprintf("Position is invalid: %v", err))
	}

	result, err := b.playerService.Seek(ctx, &player.SeekInput{
		GuildID:        m.GuildID,
		PositionMillis: position,
	})
	if err != nil {
		return b.replyInternalError(ctx, m, err)
	}

	return b.reply(ctx, m, fmt.Sprintf("Position was set to %dms", result.PositionMillis))
}

func (b *Bot) handlePause(ctx context.Context, m *discordgo.MessageCreate) error {
	result, err := b.playerService.TogglePause(ctx, &player.TogglePauseInput{
		GuildID: m.GuildID,
	})
	if err != nil {
		return b.replyInternalError(ctx, m, err)
	}

	if result.Paused {
		return b.reply(ctx, m, "Paused")
	}

	return b.reply(ctx, m, "Unpaused")
}

func (b *Bot) handlePing(ctx context.Context, m *discordgo.MessageCreate) error {
	return b.reply(ctx, m, "Pong!")
}

// reply posts a message back to the channel the command came from
func (b *Bot) reply(ctx context.Context, m *discordgo.MessageCreate, content string) error {
	return b.replier.SendMessage(ctx, m.ChannelID, content)
}

// replyTrackError maps track resolution failures onto user-facing replies;
// everything else is surfaced opaquely and returned for logging.
func (b *Bot) replyTrackError(ctx context.Context, m *discordgo.MessageCreate, err error) error {
	if errors.Is(err, resolver.ErrNoTracksFound) {
		return b.reply(ctx, m, "No tracks found")
	}

	var resFailed *resolver.ResolutionFailedError
	if errors.As(err, &resFailed) {
		if replyErr := b.reply(ctx, m, "Track lookup failed, try again later"); replyErr != nil {
			b.logger.Warn("failed to send error reply", "error", replyErr)
		}

		return err
	}

	return b.replyInternalError(ctx, m, err)
}

// replyInternalError tells the user something went wrong without leaking the
// cause, and hands the error back so the task logger records it.
func (b *Bot) replyInternalError(ctx context.Context, m *discordgo.MessageCreate, err error) error {
	if replyErr := b.reply(ctx, m, "Something went wrong"); replyErr != nil {
		b.logger.Warn("failed to send error reply", "error", replyErr)
	}

	return err
}
