package recommendations

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the recommender.
type Store interface {
	RecommendSongs(ctx context.Context, username string) ([]store.RecommendedSong, error)
}

// Service exposes the weighted co-occurrence recommender.
type Service interface {
	ForUser(ctx context.Context, username string) ([]store.RecommendedSong, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) ForUser(ctx context.Context, username string) ([]store.RecommendedSong, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecommendSongs(ctx, username)
}
