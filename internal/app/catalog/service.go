package catalog

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the catalog service.
type Store interface {
	SearchSongs(ctx context.Context, filter store.SongFilter) ([]store.Song, error)
}

// Service exposes catalog search.
type Service interface {
	Search(ctx context.Context, filter store.SongFilter) ([]store.Song, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Search(ctx context.Context, filter store.SongFilter) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchSongs(ctx, filter)
}
