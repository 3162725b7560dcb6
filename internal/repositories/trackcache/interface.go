package trackcache

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/deejay/internal/repositories/trackcache Repository

import (
	"context"

	"github.com/KirkDiggler/deejay/internal/models"
)

// Repository defines the interface for caching resolved tracks by the
// free-text identifier they were resolved from
type Repository interface {
	// SaveTrack caches a resolved track under its identifier
	SaveTrack(ctx context.Context, input *SaveTrackInput) error

	// GetTrack retrieves a cached track by identifier
	GetTrack(ctx context.Context, input *GetTrackInput) (*models.Track, error)
}
