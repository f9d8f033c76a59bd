package likes

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the like service.
type Store interface {
	LikeSong(ctx context.Context, username string, ref store.SongRef) error
	UnlikeSong(ctx context.Context, username string, ref store.SongRef) error
	ListLikes(ctx context.Context, username string) ([]store.LikedSong, error)
}

// Service coordinates like/unlike workflows.
type Service interface {
	Like(ctx context.Context, username string, ref store.SongRef) error
	Unlike(ctx context.Context, username string, ref store.SongRef) error
	List(ctx context.Context, username string) ([]store.LikedSong, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Like(ctx context.Context, username string, ref store.SongRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.LikeSong(ctx, username, ref)
}

func (s *service) Unlike(ctx context.Context, username string, ref store.SongRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UnlikeSong(ctx, username, ref)
}

func (s *service) List(ctx context.Context, username string) ([]store.LikedSong, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListLikes(ctx, username)
}
