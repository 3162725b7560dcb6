package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/deejay/internal/common/uuid"
	"github.com/KirkDiggler/deejay/internal/lavalink"
	"github.com/KirkDiggler/deejay/internal/services/player"
	"github.com/KirkDiggler/deejay/internal/sessions"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session       *discordgo.Session
	prefix        string
	playerService player.Service
	sessions      *sessions.Directory
	node          *lavalink.Node
	replier       Replier
	logger        *slog.Logger
	taskTimeout   time.Duration
	uuids         uuid.UUID

	// lookupVoiceChannel resolves the voice channel a user currently sits in
	lookupVoiceChannel func(guildID, userID string) (string, error)

	// voiceSessionIDs maps guild ID to the bot's gateway voice session,
	// needed to hand voice credentials to the audio node
	voiceMu         sync.Mutex
	voiceSessionIDs map[string]string
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord gateway session; the caller owns its creation
	// so the messenger and voice gateway can share it
	Session *discordgo.Session

	// CommandPrefix marks chat messages as commands; defaults to "!"
	CommandPrefix string

	// PlayerService executes playback commands
	PlayerService player.Service

	// Sessions is the per-guild session directory
	Sessions *sessions.Directory

	// Node is the remote audio node, target of voice credential forwarding
	Node *lavalink.Node

	// Replier posts command replies
	Replier Replier

	// Logger for task failures; defaults to slog.Default()
	Logger *slog.Logger

	// TaskTimeout bounds each dispatched command task; defaults to 10s
	TaskTimeout time.Duration

	// UUIDGenerator tags dispatched tasks for log correlation
	UUIDGenerator uuid.UUID
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.PlayerService == nil {
		return nil, errors.New("player service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session directory cannot be nil")
	}

	if cfg.Node == nil {
		return nil, errors.New("node cannot be nil")
	}

	if cfg.Replier == nil {
		return nil, errors.New("replier cannot be nil")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	taskTimeout := cfg.TaskTimeout
	if taskTimeout == 0 {
		taskTimeout = 10 * time.Second
	}

	uuids := cfg.UUIDGenerator
	if uuids == nil {
		uuids = uuid.New()
	}

	bot := &Bot{
		session:         cfg.Session,
		prefix:          prefix,
		playerService:   cfg.PlayerService,
		sessions:        cfg.Sessions,
		node:            cfg.Node,
		replier:         cfg.Replier,
		logger:          logger,
		taskTimeout:     taskTimeout,
		uuids:           uuids,
		voiceSessionIDs: make(map[string]string),
	}
	bot.lookupVoiceChannel = bot.stateVoiceChannel

	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent

	// Register the gateway event handlers
	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleVoiceStateUpdate)
	cfg.Session.AddHandler(bot.handleVoiceServerUpdate)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Info("discord connection open")

	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// UserID returns the bot's own user ID, for the audio node handshake
func (b *Bot) UserID() (string, error) {
	user, err := b.session.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch current user: %w", err)
	}

	return user.ID, nil
}

// handleMessageCreate parses prefixed chat messages into commands and
// dispatches them. Unrecognized commands are silently ignored.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if m.GuildID == "" {
		b.logger.Debug("skipping non-guild message", "channel_id", m.ChannelID)
		return
	}

	command, args, ok := parseCommand(b.prefix, m.Content)
	if !ok {
		return
	}

	switch command {
	case "play":
		b.dispatch("play", m, func(ctx context.Context) error {
			return b.handlePlay(ctx, m, args)
		})
	case "add", "enqueue":
		b.dispatch("enqueue", m, func(ctx context.Context) error {
			return b.handleEnqueue(ctx, m, args)
		})
	case "stop":
		b.dispatch("stop", m, func(ctx context.Context) error {
			return b.handleStop(ctx, m)
		})
	case "volume":
		b.dispatch("volume", m, func(ctx context.Context) error {
			return b.handleVolume(ctx, m, args)
		})
	case "seek":
		b.dispatch("seek", m, func(ctx context.Context) error {
			return b.handleSeek(ctx, m, args)
		})
	case "pause":
		b.dispatch("pause", m, func(ctx context.Context) error {
			return b.handlePause(ctx, m)
		})
	case "ping":
		b.dispatch("ping", m, func(ctx context.Context) error {
			return b.handlePing(ctx, m)
		})
	}
}

// dispatch runs a command handler as its own task: the guild's reply channel
// is recorded first, then the handler runs with a bounded context, panic
// recovery, and structured failure logging.
func (b *Bot) dispatch(command string, m *discordgo.MessageCreate, fn func(context.Context) error) {
	b.sessions.AssociateReplyChannel(m.GuildID, m.ChannelID)

	logger := b.logger.With(
		"task_id", b.uuids.NewUUID(),
		"command", command,
		"guild_id", m.GuildID,
	)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.taskTimeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				logger.Error("command handler panicked", "panic", r)
			}
		}()

		if err := fn(ctx); err != nil {
			logger.Error("command handler failed", "error", err)
		}
	}()
}

// stateVoiceChannel finds the voice channel a user is connected to, from the
// gateway state cache. An empty channel ID means the user is not in voice.
func (b *Bot) stateVoiceChannel(guildID, userID string) (string, error) {
	guild, err := b.session.State.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to get guild from state: %w", err)
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID, nil
		}
	}

	return "", nil
}

// handleVoiceStateUpdate records the bot's own gateway voice session per
// guild; the audio node needs it alongside the voice server credentials.
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	if s.State.User == nil || e.UserID != s.State.User.ID {
		return
	}

	b.voiceMu.Lock()
	b.voiceSessionIDs[e.GuildID] = e.SessionID
	b.voiceMu.Unlock()
}

// handleVoiceServerUpdate forwards voice credentials to the audio node so it
// can take over the guild's voice connection.
func (b *Bot) handleVoiceServerUpdate(s *discordgo.Session, e *discordgo.VoiceServerUpdate) {
	b.voiceMu.Lock()
	sessionID := b.voiceSessionIDs[e.GuildID]
	b.voiceMu.Unlock()

	if sessionID == "" {
		b.logger.Warn("voice server update before voice state update", "guild_id", e.GuildID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.taskTimeout)
	defer cancel()

	err := b.node.VoiceUpdate(ctx, e.GuildID, sessionID, lavalink.VoiceServerUpdate{
		Token:    e.Token,
		GuildID:  e.GuildID,
		Endpoint: e.Endpoint,
	})
	if err != nil {
		b.logger.Error("failed to forward voice credentials", "guild_id", e.GuildID, "error", err)
	}
}
