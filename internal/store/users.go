package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Comparing against this on a lookup miss keeps login timing flat.
var dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")

// User holds the public profile fields of an account.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Bio      string `json:"bio"`
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *Store) CreateUser(ctx context.Context, username, email, password, bio string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("username, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, bio)
		VALUES ($1, $2, $3, $4)
	`, username, email, hash, nullIfEmpty(bio)); err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// Authenticate validates an email/password pair and returns the account.
func (s *Store) Authenticate(ctx context.Context, email, password string) (User, error) {
	var (
		user User
		hash []byte
		bio  sql.NullString
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT username, email, password_hash, bio
		FROM users
		WHERE email = $1
	`, email).Scan(&user.Username, &user.Email, &hash, &bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	user.Bio = bio.String
	return user, nil
}

// UserByUsername returns the profile fields for an account.
func (s *Store) UserByUsername(ctx context.Context, username string) (User, error) {
	var (
		user User
		bio  sql.NullString
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT username, email, bio
		FROM users
		WHERE username = $1
	`, username).Scan(&user.Username, &user.Email, &bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	user.Bio = bio.String
	return user, nil
}

// UpdateBio overwrites the account bio.
func (s *Store) UpdateBio(ctx context.Context, username, bio string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET bio = $1
		WHERE username = $2
	`, nullIfEmpty(bio), username)
	if err != nil {
		return fmt.Errorf("update bio: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePassword rehashes and stores a new password after verifying the
// current one.
func (s *Store) UpdatePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	var hash []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash
		FROM users
		WHERE username = $1
	`, username).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $1
		WHERE username = $2
	`, newHash, username); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// DeleteUser removes the account. Owned playlists and likes go with it via
// the schema's ON DELETE CASCADE.
func (s *Store) DeleteUser(ctx context.Context, username string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
