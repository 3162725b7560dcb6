package trackcache

import (
	"time"

	"github.com/KirkDiggler/deejay/internal/models"
)

type SaveTrackInput struct {
	// Identifier is the free-text query the track was resolved from
	Identifier string

	// Track is the resolved track to cache
	Track *models.Track

	// ResolvedAt is when the resolution happened
	ResolvedAt time.Time

	// TTL bounds how long the cached entry stays valid; zero means no expiry
	TTL time.Duration
}

type GetTrackInput struct {
	Identifier string
}
