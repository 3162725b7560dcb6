// Package lavalink is a minimal client for a Lavalink v3 audio node: it
// maintains the node websocket, fans node lifecycle events out to a channel,
// and hands out per-guild player handles for issuing directives.
package lavalink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrNotConnected is returned when a directive is issued before the node
// websocket has been opened or after it has closed.
var ErrNotConnected = errors.New("not connected to audio node")

// Config holds configuration for the node client
type Config struct {
	// Address is the host:port of the audio node
	Address string

	// Authorization is the node's configured password
	Authorization string

	// Logger for connection lifecycle and unparseable payloads
	Logger *slog.Logger
}

// Node is a client for a single audio node
type Node struct {
	cfg    *Config
	logger *slog.Logger

	events chan Event
	done   chan struct{}

	connMu sync.Mutex
	conn   *websocket.Conn

	playersMu sync.Mutex
	players   map[string]*Player
}

// New creates a new node client. Open must be called before issuing
// directives or consuming events.
func New(cfg *Config) (*Node, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Address == "" {
		return nil, errors.New("node address cannot be empty")
	}

	if cfg.Authorization == "" {
		return nil, errors.New("node authorization cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Node{
		cfg:     cfg,
		logger:  logger,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
		players: make(map[string]*Player),
	}, nil
}

// Address returns the host:port of the audio node
func (n *Node) Address() string {
	return n.cfg.Address
}

// Authorization returns the node's password, for use by the track resolver's
// REST calls.
func (n *Node) Authorization() string {
	return n.cfg.Authorization
}

// Open dials the node websocket and starts reading events. userID is the bot
// user the node associates players with.
func (n *Node) Open(ctx context.Context, userID string) error {
	header := http.Header{}
	header.Set("Authorization", n.cfg.Authorization)
	header.Set("User-Id", userID)
	header.Set("Client-Name", "deejay")

	u := url.URL{Scheme: "ws", Host: n.cfg.Address}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		return fmt.Errorf("failed to connect to audio node: %w", err)
	}

	n.connMu.Lock()
	n.conn = conn
	n.connMu.Unlock()

	go n.readLoop(conn)

	n.logger.Info("connected to audio node", "address", n.cfg.Address)

	return nil
}

// Close tears down the node websocket. The events channel is closed once the
// read loop observes the closed connection.
func (n *Node) Close() error {
	n.connMu.Lock()
	defer n.connMu.Unlock()

	if n.conn == nil {
		return nil
	}

	close(n.done)
	err := n.conn.Close()
	n.conn = nil
	return err
}

// Events returns the stream of node lifecycle events. The channel is closed
// when the node connection is lost.
func (n *Node) Events() <-chan Event {
	return n.events
}

// Player returns the player handle for a guild, creating it on first use
func (n *Node) Player(guildID string) *Player {
	n.playersMu.Lock()
	defer n.playersMu.Unlock()

	if p, ok := n.players[guildID]; ok {
		return p
	}

	p := &Player{
		node:    n,
		guildID: guildID,
	}
	n.players[guildID] = p

	return p
}

// VoiceUpdate forwards a gateway voice server update to the node so it can
// open the voice connection for the guild.
func (n *Node) VoiceUpdate(ctx context.Context, guildID, sessionID string, event VoiceServerUpdate) error {
	return n.send(ctx, voiceUpdateOp{
		Op:        "voiceUpdate",
		GuildID:   guildID,
		SessionID: sessionID,
		Event:     event,
	})
}

// send marshals op and writes it to the node socket. The connection mutex
// doubles as the write lock; gorilla connections allow one writer at a time.
func (n *Node) send(ctx context.Context, op any) error {
	payload, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal node op: %w", err)
	}

	n.connMu.Lock()
	defer n.connMu.Unlock()

	if n.conn == nil {
		return ErrNotConnected
	}

	// The deadline is set unconditionally: the connection is shared across
	// commands, and a deadline-free context must clear whatever an earlier
	// send left behind. ctx.Deadline's zero time means no deadline.
	deadline, _ := ctx.Deadline()
	if err := n.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := n.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("failed to send node op: %w", err)
	}

	return nil
}

func (n *Node) readLoop(conn *websocket.Conn) {
	defer close(n.events)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			n.logger.Warn("audio node socket closed", "error", err)
			return
		}

		var payload eventPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			n.logger.Warn("unparseable node payload", "error", err)
			continue
		}

		if payload.Op != "event" {
			// Stats and player updates are not consumed.
			continue
		}

		switch payload.Type {
		case "TrackStartEvent":
			n.emit(Event{
				Type:    EventTrackStart,
				GuildID: payload.GuildID,
				TrackID: payload.Track,
			})
		case "TrackEndEvent":
			n.emit(Event{
				Type:    EventTrackEnd,
				GuildID: payload.GuildID,
				TrackID: payload.Track,
				Reason:  payload.Reason,
			})
		default:
			// Exceptions and websocket-closed events are logged only.
			n.logger.Debug("ignoring node event", "type", payload.Type, "guild_id", payload.GuildID)
		}
	}
}

// emit delivers an event to the stream, giving up once the node is closed.
// A full buffer with no consumer must not pin the read loop past Close.
func (n *Node) emit(ev Event) {
	select {
	case n.events <- ev:
	case <-n.done:
	}
}
