package player

import "context"

// Service defines the interface for playback operations
type Service interface {
	// Play joins the caller's voice channel, resolves the identifier, and
	// starts playback immediately
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Enqueue joins the caller's voice channel, resolves the identifier, and
	// appends the track to the guild's queue without starting playback
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)

	// AdvanceQueue dequeues the guild's next track and starts playing it;
	// invoked when the node reports a track has ended
	AdvanceQueue(ctx context.Context, input *AdvanceQueueInput) (*AdvanceQueueOutput, error)

	// Stop tears down the guild's player and leaves the voice channel
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// SetVolume sets the guild's playback volume
	SetVolume(ctx context.Context, input *SetVolumeInput) (*SetVolumeOutput, error)

	// Seek moves the playhead to a position in the current track
	Seek(ctx context.Context, input *SeekInput) (*SeekOutput, error)

	// TogglePause flips the guild's pause state
	TogglePause(ctx context.Context, input *TogglePauseInput) (*TogglePauseOutput, error)
}
