package lavalink

// EventType identifies a node lifecycle event
type EventType string

const (
	// EventTrackStart is emitted when the node starts playing a track
	EventTrackStart EventType = "TrackStartEvent"

	// EventTrackEnd is emitted when a track stops playing
	EventTrackEnd EventType = "TrackEndEvent"
)

// Event is a node lifecycle notification for one guild
type Event struct {
	// Type of the event
	Type EventType

	// GuildID the event applies to
	GuildID string

	// TrackID is the token of the track the event refers to
	TrackID string

	// Reason the track ended, only set for EventTrackEnd
	Reason string
}

// VoiceServerUpdate carries the gateway voice credentials the node needs to
// join a voice channel.
type VoiceServerUpdate struct {
	Token    string `json:"token"`
	GuildID  string `json:"guild_id"`
	Endpoint string `json:"endpoint"`
}

// eventPayload is the wire shape of inbound node messages
type eventPayload struct {
	Op      string `json:"op"`
	Type    string `json:"type"`
	GuildID string `json:"guildId"`
	Track   string `json:"track"`
	Reason  string `json:"reason"`
}

// voiceUpdateOp forwards gateway voice credentials to the node
type voiceUpdateOp struct {
	Op        string            `json:"op"`
	GuildID   string            `json:"guildId"`
	SessionID string            `json:"sessionId"`
	Event     VoiceServerUpdate `json:"event"`
}

// playOp starts playback of a track
type playOp struct {
	Op      string `json:"op"`
	GuildID string `json:"guildId"`
	Track   string `json:"track"`
}

// pauseOp pauses or resumes playback
type pauseOp struct {
	Op      string `json:"op"`
	GuildID string `json:"guildId"`
	Pause   bool   `json:"pause"`
}

// seekOp moves the playhead to a position in milliseconds
type seekOp struct {
	Op       string `json:"op"`
	GuildID  string `json:"guildId"`
	Position int64  `json:"position"`
}

// volumeOp sets the player volume
type volumeOp struct {
	Op      string `json:"op"`
	GuildID string `json:"guildId"`
	Volume  int    `json:"volume"`
}

// destroyOp tears down the guild's player on the node
type destroyOp struct {
	Op      string `json:"op"`
	GuildID string `json:"guildId"`
}
