// Package reactor consumes audio node lifecycle events and keeps each
// guild's queue progressing, posting best-effort status updates along the
// way.
package reactor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/deejay/internal/lavalink"
	"github.com/KirkDiggler/deejay/internal/services/player"
	"github.com/KirkDiggler/deejay/internal/sessions"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/deejay/internal/reactor Messenger

// Messenger posts status text to a channel
type Messenger interface {
	SendMessage(ctx context.Context, channelID, content string) error
}

// Config holds configuration for the reactor
type Config struct {
	// PlayerService advances guild queues
	PlayerService player.Service

	// Sessions resolves each guild's reply channel
	Sessions *sessions.Directory

	// Messenger posts status updates
	Messenger Messenger

	// Logger for dropped and failed notifications
	Logger *slog.Logger

	// TaskTimeout bounds each event task; defaults to 10s
	TaskTimeout time.Duration
}

// Reactor reacts to node events. Failures are logged and swallowed; a bad
// event must never stall the loop or affect other guilds.
type Reactor struct {
	playerService player.Service
	sessions      *sessions.Directory
	messenger     Messenger
	logger        *slog.Logger
	taskTimeout   time.Duration
}

// New creates a new reactor
func New(cfg *Config) (*Reactor, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PlayerService == nil {
		return nil, errors.New("player service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session directory cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	taskTimeout := cfg.TaskTimeout
	if taskTimeout == 0 {
		taskTimeout = 10 * time.Second
	}

	return &Reactor{
		playerService: cfg.PlayerService,
		sessions:      cfg.Sessions,
		messenger:     cfg.Messenger,
		logger:        logger,
		taskTimeout:   taskTimeout,
	}, nil
}

// Run consumes events until the stream closes or ctx is cancelled. Each
// event is handled in its own task, so a hung advance or send for one guild
// stalls only that task, never the loop or other guilds' notifications.
func (r *Reactor) Run(ctx context.Context, events <-chan lavalink.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			r.dispatch(ctx, event)
		}
	}
}

// dispatch hands one event to its own bounded task
func (r *Reactor) dispatch(ctx context.Context, event lavalink.Event) {
	go func() {
		taskCtx, cancel := context.WithTimeout(ctx, r.taskTimeout)
		defer cancel()

		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("event handler panicked", "guild_id", event.GuildID, "panic", rec)
			}
		}()

		r.Handle(taskCtx, event)
	}()
}

// Handle reacts to a single node event
func (r *Reactor) Handle(ctx context.Context, event lavalink.Event) {
	switch event.Type {
	case lavalink.EventTrackStart:
		r.handleTrackStart(ctx, event)
	case lavalink.EventTrackEnd:
		r.handleTrackEnd(ctx, event)
	default:
		// Only track lifecycle events are consumed.
	}
}

func (r *Reactor) handleTrackStart(ctx context.Context, event lavalink.Event) {
	r.post(ctx, event.GuildID, "Now playing")
}

func (r *Reactor) handleTrackEnd(ctx context.Context, event lavalink.Event) {
	output, err := r.playerService.AdvanceQueue(ctx, &player.AdvanceQueueInput{
		GuildID: event.GuildID,
	})
	if err != nil {
		r.logger.Error("failed to advance queue", "guild_id", event.GuildID, "error", err)
		return
	}

	if output.Track == nil {
		r.post(ctx, event.GuildID, "The queue is empty")
		return
	}

	r.post(ctx, event.GuildID, fmt.Sprintf(
		"Playing **%s** by **%s**",
		output.Track.Info.Title, output.Track.Info.Author,
	))
}

// post sends a status update to the guild's reply channel. Notifications are
// not re-deliverable: with no known channel the update is logged and dropped.
func (r *Reactor) post(ctx context.Context, guildID, content string) {
	channelID, ok := r.sessions.ReplyChannel(guildID)
	if !ok {
		r.logger.Debug("no reply channel for status update", "guild_id", guildID)
		return
	}

	if err := r.messenger.SendMessage(ctx, channelID, content); err != nil {
		r.logger.Warn("failed to post status update",
			"guild_id", guildID, "channel_id", channelID, "error", err)
	}
}
