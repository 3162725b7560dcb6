package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/deejay/internal/config"
	"github.com/KirkDiggler/deejay/internal/handlers/discord"
	"github.com/KirkDiggler/deejay/internal/lavalink"
	"github.com/KirkDiggler/deejay/internal/reactor"
	"github.com/KirkDiggler/deejay/internal/repositories/trackcache"
	"github.com/KirkDiggler/deejay/internal/resolver"
	playerService "github.com/KirkDiggler/deejay/internal/services/player"
	"github.com/KirkDiggler/deejay/internal/sessions"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
)

// nodeProvider adapts the node client to the player service's view of it
type nodeProvider struct {
	node *lavalink.Node
}

func (p *nodeProvider) Player(guildID string) playerService.NodePlayer {
	return p.node.Player(guildID)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// The track cache is optional; without Redis every resolution hits the
	// audio node.
	var cache trackcache.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		cache, err = trackcache.NewRedis(&trackcache.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create track cache: %v", err)
		}
	}

	// Initialize the Discord session; the bot, messenger, and voice gateway
	// all share it
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	node, err := lavalink.New(&lavalink.Config{
		Address:       cfg.LavalinkHost,
		Authorization: cfg.LavalinkAuthorization,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("Failed to create node client: %v", err)
	}

	trackResolver, err := resolver.New(&resolver.Config{
		Address:       node.Address(),
		Authorization: node.Authorization(),
		Cache:         cache,
		CacheTTL:      cfg.TrackCacheTTL,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("Failed to create track resolver: %v", err)
	}

	sessionDirectory := sessions.New()
	messenger := discord.NewMessenger(session)

	playerSvc, err := playerService.New(&playerService.Config{
		Gateway:  discord.NewVoiceGateway(session),
		Node:     &nodeProvider{node: node},
		Resolver: trackResolver,
		Sessions: sessionDirectory,
	})
	if err != nil {
		log.Fatalf("Failed to create player service: %v", err)
	}

	nodeReactor, err := reactor.New(&reactor.Config{
		PlayerService: playerSvc,
		Sessions:      sessionDirectory,
		Messenger:     messenger,
		Logger:        logger,
		TaskTimeout:   cfg.TaskTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create reactor: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		CommandPrefix: cfg.CommandPrefix,
		PlayerService: playerSvc,
		Sessions:      sessionDirectory,
		Node:          node,
		Replier:       messenger,
		Logger:        logger,
		TaskTimeout:   cfg.TaskTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// The node handshake needs the bot's own user ID
	userID, err := bot.UserID()
	if err != nil {
		log.Fatalf("Failed to fetch bot user: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	openCtx, openCancel := context.WithTimeout(runCtx, 10*time.Second)
	defer openCancel()

	if err := node.Open(openCtx, userID); err != nil {
		log.Fatalf("Failed to connect to audio node: %v", err)
	}

	go nodeReactor.Run(runCtx, node.Events())

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	runCancel()

	if err := node.Close(); err != nil {
		log.Printf("Error closing node connection: %v", err)
	}

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
