// Package player implements the per-guild playback operations: each one is a
// short protocol over the gateway and the remote audio node, with the
// session directory holding the state in between.
package player

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/KirkDiggler/deejay/internal/resolver"
	"github.com/KirkDiggler/deejay/internal/sessions"
)

// service implements the Service interface
type service struct {
	gateway  Gateway
	node     Node
	resolver resolver.Resolver
	sessions *sessions.Directory
}

// New creates a new player service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Node == nil {
		return nil, ErrNilNode
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}

	return &service{
		gateway:  cfg.Gateway,
		node:     cfg.Node,
		resolver: cfg.Resolver,
		sessions: cfg.Sessions,
	}, nil
}

// Play joins the voice channel, resolves the identifier, and starts playback.
// The join happens first; the node cannot render to a channel the bot has not
// joined.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	track, err := s.joinAndResolve(ctx, input.GuildID, input.ChannelID, input.Identifier)
	if err != nil {
		return nil, err
	}

	if err := s.node.Player(input.GuildID).Play(ctx, track.ID); err != nil {
		return nil, fmt.Errorf("failed to issue play directive: %w", err)
	}

	return &PlayOutput{Track: track}, nil
}

// Enqueue joins the voice channel, resolves the identifier, and appends the
// track to the guild's queue. It never starts playback; the track plays when
// the queue advances.
func (s *service) Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error) {
	track, err := s.joinAndResolve(ctx, input.GuildID, input.ChannelID, input.Identifier)
	if err != nil {
		return nil, err
	}

	s.sessions.WithSession(input.GuildID, func(sess *sessions.Session) {
		sess.Queue().Enqueue(*track)
	})

	return &EnqueueOutput{Track: track}, nil
}

// AdvanceQueue dequeues the guild's next track and plays it. A nil Track in
// the output means the queue was empty and no directive was issued.
func (s *service) AdvanceQueue(ctx context.Context, input *AdvanceQueueInput) (*AdvanceQueueOutput, error) {
	var track models.Track
	var ok bool

	s.sessions.WithSession(input.GuildID, func(sess *sessions.Session) {
		track, ok = sess.Queue().Dequeue()
	})

	if !ok {
		return &AdvanceQueueOutput{}, nil
	}

	if err := s.node.Player(input.GuildID).Play(ctx, track.ID); err != nil {
		return nil, fmt.Errorf("failed to issue play directive: %w", err)
	}

	return &AdvanceQueueOutput{Track: &track}, nil
}

// Stop destroys the guild's node player and then leaves the voice channel.
// Destroy comes first so the node never holds playback state for a channel
// the bot has already left.
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	if err := s.node.Player(input.GuildID).Destroy(ctx); err != nil {
		return nil, fmt.Errorf("failed to issue destroy directive: %w", err)
	}

	if err := s.gateway.LeaveVoice(ctx, input.GuildID); err != nil {
		return nil, fmt.Errorf("failed to leave voice channel: %w", err)
	}

	return &StopOutput{}, nil
}

// SetVolume validates the value and sets the guild's volume. Validation comes
// before any directive, so a rejected value has no observable side effect.
func (s *service) SetVolume(ctx context.Context, input *SetVolumeInput) (*SetVolumeOutput, error) {
	if input.Volume < MinVolume || input.Volume > MaxVolume {
		return nil, &OutOfBoundsError{
			Value: input.Volume,
			Min:   MinVolume,
			Max:   MaxVolume,
		}
	}

	if err := s.node.Player(input.GuildID).Volume(ctx, input.Volume); err != nil {
		return nil, fmt.Errorf("failed to issue volume directive: %w", err)
	}

	return &SetVolumeOutput{Volume: input.Volume}, nil
}

// Seek moves the playhead of the guild's current track
func (s *service) Seek(ctx context.Context, input *SeekInput) (*SeekOutput, error) {
	if err := s.node.Player(input.GuildID).Seek(ctx, input.PositionMillis); err != nil {
		return nil, fmt.Errorf("failed to issue seek directive: %w", err)
	}

	return &SeekOutput{PositionMillis: input.PositionMillis}, nil
}

// TogglePause flips the guild's pause state. The read-then-write runs inside
// the guild's exclusive session section so concurrent toggles for the same
// guild serialize instead of racing.
func (s *service) TogglePause(ctx context.Context, input *TogglePauseInput) (*TogglePauseOutput, error) {
	player := s.node.Player(input.GuildID)

	var paused bool
	var pauseErr error

	s.sessions.WithSession(input.GuildID, func(*sessions.Session) {
		paused = !player.Paused()
		pauseErr = player.Pause(ctx, paused)
	})

	if pauseErr != nil {
		return nil, fmt.Errorf("failed to issue pause directive: %w", pauseErr)
	}

	return &TogglePauseOutput{Paused: paused}, nil
}

// joinAndResolve is the shared front half of Play and Enqueue: voice join
// first, then track resolution.
func (s *service) joinAndResolve(ctx context.Context, guildID, channelID, identifier string) (*models.Track, error) {
	if err := s.gateway.JoinVoice(ctx, guildID, channelID); err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}

	track, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return track, nil
}
