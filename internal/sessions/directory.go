package sessions

import "sync"

// Session holds the mutable per-guild state: the track queue and the last
// known text channel for status replies. Sessions are only reachable through
// Directory.WithSession, which guarantees exclusive access.
type Session struct {
	replyChannelID string
	queue          TrackQueue
}

// Queue returns the session's track queue
func (s *Session) Queue() *TrackQueue {
	return &s.queue
}

// ReplyChannelID returns the last known reply channel for the guild. The
// second return value is false when no channel has been associated yet.
func (s *Session) ReplyChannelID() (string, bool) {
	return s.replyChannelID, s.replyChannelID != ""
}

// SetReplyChannelID records the channel status updates should be sent to
func (s *Session) SetReplyChannelID(channelID string) {
	s.replyChannelID = channelID
}

// guildSession pairs a session with the mutex that serializes access to it
type guildSession struct {
	mu      sync.Mutex
	session Session
}

// Directory maps guild IDs to their sessions. Sessions are created lazily on
// first use and live for the lifetime of the process.
//
// Access is serialized per guild: two operations on the same guild run one
// after the other, while operations on distinct guilds proceed independently.
// The directory-level mutex guards only map lookup and insertion, so a slow
// operation on one guild never blocks another.
type Directory struct {
	mu     sync.Mutex
	guilds map[string]*guildSession
}

// New creates an empty session directory
func New() *Directory {
	return &Directory{
		guilds: make(map[string]*guildSession),
	}
}

// get returns the entry for guildID, creating it if absent. Concurrent first
// accesses converge on the same entry.
func (d *Directory) get(guildID string) *guildSession {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.guilds[guildID]
	if !ok {
		entry = &guildSession{}
		d.guilds[guildID] = entry
	}

	return entry
}

// WithSession runs fn with exclusive access to the guild's session, creating
// the session if it does not exist yet. The per-guild lock is held for the
// duration of the callback, so a long fn delays other commands for the same
// guild but never for other guilds.
func (d *Directory) WithSession(guildID string, fn func(*Session)) {
	entry := d.get(guildID)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	fn(&entry.session)
}

// AssociateReplyChannel records channelID as the destination for the guild's
// status updates, overwriting any previous association.
func (d *Directory) AssociateReplyChannel(guildID, channelID string) {
	d.WithSession(guildID, func(s *Session) {
		s.SetReplyChannelID(channelID)
	})
}

// ReplyChannel returns the guild's last known reply channel. The second
// return value is false when no channel has been associated yet.
func (d *Directory) ReplyChannel(guildID string) (string, bool) {
	var channelID string
	var ok bool

	d.WithSession(guildID, func(s *Session) {
		channelID, ok = s.ReplyChannelID()
	})

	return channelID, ok
}
