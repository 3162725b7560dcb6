package player

import (
	"context"

	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/KirkDiggler/deejay/internal/resolver"
	"github.com/KirkDiggler/deejay/internal/sessions"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/KirkDiggler/deejay/internal/services/player Gateway
//go:generate mockgen -package=mocks -destination=mocks/mock_node.go github.com/KirkDiggler/deejay/internal/services/player Node,NodePlayer
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/deejay/internal/services/player Service

// Gateway is the slice of the chat gateway the service needs: moving the bot
// in and out of voice channels.
type Gateway interface {
	// JoinVoice connects the bot to a guild voice channel
	JoinVoice(ctx context.Context, guildID, channelID string) error

	// LeaveVoice disconnects the bot from the guild's voice channel
	LeaveVoice(ctx context.Context, guildID string) error
}

// Node hands out per-guild player handles for the remote audio node
type Node interface {
	// Player returns the guild's player handle, creating it on first use
	Player(guildID string) NodePlayer
}

// NodePlayer issues directives for one guild to the remote audio node
type NodePlayer interface {
	// Play starts playback of a track token
	Play(ctx context.Context, trackID string) error

	// Pause pauses or resumes playback
	Pause(ctx context.Context, paused bool) error

	// Seek moves the playhead to a position in milliseconds
	Seek(ctx context.Context, positionMillis int64) error

	// Volume sets the player volume
	Volume(ctx context.Context, volume int) error

	// Destroy tears down the guild's player on the node
	Destroy(ctx context.Context) error

	// Paused reports the last known pause state
	Paused() bool
}

// Volume bounds accepted by SetVolume
const (
	MinVolume = 0
	MaxVolume = 1000
)

// Config holds configuration for the player service
type Config struct {
	// Gateway moves the bot in and out of voice channels
	Gateway Gateway

	// Node is the remote audio node
	Node Node

	// Resolver turns free-text identifiers into playable tracks
	Resolver resolver.Resolver

	// Sessions is the per-guild session directory
	Sessions *sessions.Directory
}

// PlayInput contains parameters for starting playback
type PlayInput struct {
	// GuildID the command was issued in
	GuildID string

	// ChannelID is the voice channel to play in
	ChannelID string

	// Identifier is the free-text track query
	Identifier string
}

// PlayOutput is the result of starting playback
type PlayOutput struct {
	// Track that is now playing
	Track *models.Track
}

// EnqueueInput contains parameters for queueing a track
type EnqueueInput struct {
	// GuildID the command was issued in
	GuildID string

	// ChannelID is the voice channel the track will eventually play in
	ChannelID string

	// Identifier is the free-text track query
	Identifier string
}

// EnqueueOutput is the result of queueing a track
type EnqueueOutput struct {
	// Track that was appended to the queue
	Track *models.Track
}

// AdvanceQueueInput contains parameters for advancing the queue
type AdvanceQueueInput struct {
	// GuildID whose queue should advance
	GuildID string
}

// AdvanceQueueOutput is the result of advancing the queue
type AdvanceQueueOutput struct {
	// Track that started playing, or nil when the queue was empty
	Track *models.Track
}

// StopInput contains parameters for stopping playback
type StopInput struct {
	// GuildID to stop playback in
	GuildID string
}

// StopOutput is the result of stopping playback
type StopOutput struct{}

// SetVolumeInput contains parameters for setting the volume
type SetVolumeInput struct {
	// GuildID to set the volume for
	GuildID string

	// Volume in [MinVolume, MaxVolume]
	Volume int
}

// SetVolumeOutput is the result of setting the volume
type SetVolumeOutput struct {
	// Volume that was applied
	Volume int
}

// SeekInput contains parameters for seeking
type SeekInput struct {
	// GuildID to seek in
	GuildID string

	// PositionMillis is the playhead target in milliseconds
	PositionMillis int64
}

// SeekOutput is the result of seeking
type SeekOutput struct {
	// PositionMillis that was applied
	PositionMillis int64
}

// TogglePauseInput contains parameters for toggling pause
type TogglePauseInput struct {
	// GuildID to toggle pause in
	GuildID string
}

// TogglePauseOutput is the result of toggling pause
type TogglePauseOutput struct {
	// Paused is the new pause state
	Paused bool
}
