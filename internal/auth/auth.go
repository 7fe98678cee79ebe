// Package auth implements credential verification, federated login and the
// per-browser session boundary.
package auth

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"blog/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Profile is the identity returned by the federated provider.
type Profile struct {
	ID          string
	DisplayName string
}

type Core struct {
	db *sql.DB
}

func NewCore(db *sql.DB) *Core {
	return &Core{db: db}
}

// Register creates a user with a bcrypt-hashed password. The duplicate check
// is left to the store's unique constraint.
func (c *Core) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return models.CreateUser(ctx, c.db, username, string(hash))
}

// AuthenticateLocal returns ErrInvalidCredentials for an unknown username, a
// federated-only account and a wrong password alike, so callers cannot tell
// which it was.
func (c *Core) AuthenticateLocal(ctx context.Context, username, password string) (*models.User, error) {
	user, err := models.GetUserByUsername(ctx, c.db, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.PasswordHash.Valid {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// AuthenticateFederated finds or creates the user for a provider profile.
// Idempotent per provider id.
func (c *Core) AuthenticateFederated(ctx context.Context, p Profile) (*models.User, error) {
	if p.ID == "" {
		return nil, ErrInvalidCredentials
	}
	username := p.DisplayName
	if username == "" {
		username = "google-" + p.ID
	}
	return models.UpsertGoogleUser(ctx, c.db, username, p.ID)
}
