package auth

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/db"
	"blog/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbc, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbc.Close() })
	return dbc
}

func TestRegisterHashesPassword(t *testing.T) {
	core := NewCore(newTestDB(t))
	ctx := context.Background()

	u, err := core.Register(ctx, "alice", "p1")
	require.NoError(t, err)
	require.True(t, u.PasswordHash.Valid)
	assert.NotEqual(t, "p1", u.PasswordHash.String)
}

func TestRegisterDuplicate(t *testing.T) {
	core := NewCore(newTestDB(t))
	ctx := context.Background()

	_, err := core.Register(ctx, "alice", "p1")
	require.NoError(t, err)
	_, err = core.Register(ctx, "alice", "p2")
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)
}

func TestAuthenticateLocal(t *testing.T) {
	core := NewCore(newTestDB(t))
	ctx := context.Background()

	registered, err := core.Register(ctx, "alice", "p1")
	require.NoError(t, err)

	u, err := core.AuthenticateLocal(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = core.AuthenticateLocal(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// an unknown username yields the same error as a bad password
	_, err = core.AuthenticateLocal(ctx, "nobody", "p1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateLocalFederatedOnlyAccount(t *testing.T) {
	dbc := newTestDB(t)
	core := NewCore(dbc)
	ctx := context.Background()

	_, err := core.AuthenticateFederated(ctx, Profile{ID: "g-1", DisplayName: "Alice Example"})
	require.NoError(t, err)

	_, err = core.AuthenticateLocal(ctx, "Alice Example", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFederatedIdempotent(t *testing.T) {
	core := NewCore(newTestDB(t))
	ctx := context.Background()

	p := Profile{ID: "g-123", DisplayName: "Alice Example"}
	first, err := core.AuthenticateFederated(ctx, p)
	require.NoError(t, err)
	second, err := core.AuthenticateFederated(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestAuthenticateFederatedRejectsEmptyID(t *testing.T) {
	core := NewCore(newTestDB(t))

	_, err := core.AuthenticateFederated(context.Background(), Profile{DisplayName: "Alice"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFederatedEmptyDisplayName(t *testing.T) {
	core := NewCore(newTestDB(t))

	u, err := core.AuthenticateFederated(context.Background(), Profile{ID: "g-9"})
	require.NoError(t, err)
	assert.Equal(t, "google-g-9", u.Username)
}
