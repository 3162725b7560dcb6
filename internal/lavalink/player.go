package lavalink

import (
	"context"
	"sync"
)

// Player is the per-guild handle for issuing directives to the node. The node
// serializes directives for a guild server-side; the handle only tracks the
// last pause state it sent.
type Player struct {
	node    *Node
	guildID string

	mu     sync.Mutex
	paused bool
}

// GuildID returns the guild this player belongs to
func (p *Player) GuildID() string {
	return p.guildID
}

// Play starts playback of a track token
func (p *Player) Play(ctx context.Context, trackID string) error {
	return p.node.send(ctx, playOp{
		Op:      "play",
		GuildID: p.guildID,
		Track:   trackID,
	})
}

// Pause pauses or resumes playback and records the new state
func (p *Player) Pause(ctx context.Context, paused bool) error {
	if err := p.node.send(ctx, pauseOp{
		Op:      "pause",
		GuildID: p.guildID,
		Pause:   paused,
	}); err != nil {
		return err
	}

	p.mu.Lock()
	p.paused = paused
	p.mu.Unlock()

	return nil
}

// Seek moves the playhead to a position in milliseconds
func (p *Player) Seek(ctx context.Context, positionMillis int64) error {
	return p.node.send(ctx, seekOp{
		Op:       "seek",
		GuildID:  p.guildID,
		Position: positionMillis,
	})
}

// Volume sets the player volume
func (p *Player) Volume(ctx context.Context, volume int) error {
	return p.node.send(ctx, volumeOp{
		Op:      "volume",
		GuildID: p.guildID,
		Volume:  volume,
	})
}

// Destroy tears down the guild's player on the node
func (p *Player) Destroy(ctx context.Context) error {
	return p.node.send(ctx, destroyOp{
		Op:      "destroy",
		GuildID: p.guildID,
	})
}

// Paused returns the last pause state sent to the node
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}
