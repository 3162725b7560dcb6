// Package resolver resolves free-text track identifiers against the audio
// node's search endpoint, optionally caching results.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KirkDiggler/deejay/internal/common/clock"
	"github.com/KirkDiggler/deejay/internal/models"
	"github.com/KirkDiggler/deejay/internal/repositories/trackcache"
)

// Config holds configuration for the node-backed resolver
type Config struct {
	// Address is the host:port of the audio node's REST endpoint
	Address string

	// Authorization is the node's configured password
	Authorization string

	// HTTPClient to issue search requests with; defaults to a client with a
	// 10 second timeout
	HTTPClient *http.Client

	// Cache is an optional repository of previously resolved tracks
	Cache trackcache.Repository

	// CacheTTL bounds how long cached resolutions stay valid
	CacheTTL time.Duration

	// Clock stamps cache entries; defaults to the system clock
	Clock clock.Clock

	// Logger for cache misbehavior; cache failures never fail a resolution
	Logger *slog.Logger
}

// nodeResolver implements Resolver against the audio node's REST API
type nodeResolver struct {
	address       string
	authorization string
	client        *http.Client
	cache         trackcache.Repository
	cacheTTL      time.Duration
	clock         clock.Clock
	logger        *slog.Logger
}

// New creates a new node-backed resolver
func New(cfg *Config) (*nodeResolver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Address == "" {
		return nil, errors.New("node address cannot be empty")
	}

	if cfg.Authorization == "" {
		return nil, errors.New("node authorization cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &nodeResolver{
		address:       cfg.Address,
		authorization: cfg.Authorization,
		client:        client,
		cache:         cfg.Cache,
		cacheTTL:      cfg.CacheTTL,
		clock:         clk,
		logger:        logger,
	}, nil
}

// Resolve searches the node for the identifier and returns the first match
func (r *nodeResolver) Resolve(ctx context.Context, identifier string) (*models.Track, error) {
	if identifier == "" {
		return nil, ErrNoTracksFound
	}

	if track := r.cachedTrack(ctx, identifier); track != nil {
		return track, nil
	}

	loaded, err := r.loadTracks(ctx, identifier)
	if err != nil {
		return nil, &ResolutionFailedError{Identifier: identifier, Err: err}
	}

	if len(loaded.Tracks) == 0 {
		return nil, ErrNoTracksFound
	}

	// Only the first search result is used; alternates are discarded.
	track := loaded.Tracks[0]

	r.cacheTrack(ctx, identifier, &track)

	return &track, nil
}

// loadTracks issues the search request against the node's REST API
func (r *nodeResolver) loadTracks(ctx context.Context, identifier string) (*models.LoadResult, error) {
	u := url.URL{
		Scheme:   "http",
		Host:     r.address,
		Path:     "/loadtracks",
		RawQuery: url.Values{"identifier": []string{identifier}}.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", r.authorization)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected search response status: %d", res.StatusCode)
	}

	var loaded models.LoadResult
	if err := json.NewDecoder(res.Body).Decode(&loaded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &loaded, nil
}

// cachedTrack returns a previously resolved track, or nil on any miss or
// cache failure.
func (r *nodeResolver) cachedTrack(ctx context.Context, identifier string) *models.Track {
	if r.cache == nil {
		return nil
	}

	track, err := r.cache.GetTrack(ctx, &trackcache.GetTrackInput{
		Identifier: identifier,
	})
	if err != nil {
		if !errors.Is(err, trackcache.ErrTrackNotCached) {
			r.logger.Warn("track cache lookup failed", "identifier", identifier, "error", err)
		}
		return nil
	}

	return track
}

// cacheTrack stores a resolution, best effort
func (r *nodeResolver) cacheTrack(ctx context.Context, identifier string, track *models.Track) {
	if r.cache == nil {
		return
	}

	err := r.cache.SaveTrack(ctx, &trackcache.SaveTrackInput{
		Identifier: identifier,
		Track:      track,
		ResolvedAt: r.clock.Now(),
		TTL:        r.cacheTTL,
	})
	if err != nil {
		r.logger.Warn("track cache save failed", "identifier", identifier, "error", err)
	}
}
