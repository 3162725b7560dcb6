package resolver

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/KirkDiggler/deejay/internal/resolver Resolver

import (
	"context"

	"github.com/KirkDiggler/deejay/internal/models"
)

// Resolver turns a free-text identifier into a playable track
type Resolver interface {
	// Resolve searches the audio node for the identifier and returns the
	// first matching track. It returns ErrNoTracksFound when the search
	// yields nothing and a *ResolutionFailedError when the search itself
	// fails.
	Resolve(ctx context.Context, identifier string) (*models.Track, error)
}
