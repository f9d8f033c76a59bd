package users

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, username, email, password, bio string) error
	Authenticate(ctx context.Context, email, password string) (store.User, error)
	UserByUsername(ctx context.Context, username string) (store.User, error)
	UpdateBio(ctx context.Context, username, bio string) error
	UpdatePassword(ctx context.Context, username, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, username string) error
}

// Service exposes account workflows in an extensible manner.
type Service interface {
	Register(ctx context.Context, username, email, password, bio string) error
	Login(ctx context.Context, email, password string) (store.User, error)
	Profile(ctx context.Context, username string) (store.User, error)
	UpdateBio(ctx context.Context, username, bio string) error
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, username string) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, username, email, password, bio string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.CreateUser(ctx, username, email, password, bio)
}

func (s *service) Login(ctx context.Context, email, password string) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	return s.store.Authenticate(ctx, email, password)
}

func (s *service) Profile(ctx context.Context, username string) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	return s.store.UserByUsername(ctx, username)
}

func (s *service) UpdateBio(ctx context.Context, username, bio string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateBio(ctx, username, bio)
}

func (s *service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, username, currentPassword, newPassword)
}

func (s *service) DeleteAccount(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, username)
}
