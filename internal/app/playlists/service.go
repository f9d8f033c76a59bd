package playlists

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the playlist service.
type Store interface {
	CreatePlaylist(ctx context.Context, username, name string) (store.Playlist, error)
	ListPlaylists(ctx context.Context, username string) ([]store.Playlist, error)
	ListAllPlaylists(ctx context.Context) ([]store.Playlist, error)
	DeletePlaylist(ctx context.Context, username, name string) error
	AddSongToPlaylist(ctx context.Context, username, name string, ref store.SongRef) error
	RemoveSongFromPlaylist(ctx context.Context, username, name string, ref store.SongRef) error
	PlaylistSongs(ctx context.Context, username, name string) ([]store.Song, error)
}

// Service coordinates playlist workflows.
type Service interface {
	Create(ctx context.Context, username, name string) (store.Playlist, error)
	ListMine(ctx context.Context, username string) ([]store.Playlist, error)
	ListAll(ctx context.Context) ([]store.Playlist, error)
	Delete(ctx context.Context, username, name string) error
	AddSong(ctx context.Context, username, name string, ref store.SongRef) error
	RemoveSong(ctx context.Context, username, name string, ref store.SongRef) error
	Songs(ctx context.Context, username, name string) ([]store.Song, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, username, name string) (store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return store.Playlist{}, err
	}
	return s.store.CreatePlaylist(ctx, username, name)
}

func (s *service) ListMine(ctx context.Context, username string) ([]store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx, username)
}

func (s *service) ListAll(ctx context.Context) ([]store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAllPlaylists(ctx)
}

func (s *service) Delete(ctx context.Context, username, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, username, name)
}

func (s *service) AddSong(ctx context.Context, username, name string, ref store.SongRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.AddSongToPlaylist(ctx, username, name, ref)
}

func (s *service) RemoveSong(ctx context.Context, username, name string, ref store.SongRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.RemoveSongFromPlaylist(ctx, username, name, ref)
}

func (s *service) Songs(ctx context.Context, username, name string) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.PlaylistSongs(ctx, username, name)
}
