package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securepay/internal/models"
)

func TestOpen_SQLiteMigratesAndVendsRepos(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	u, err := store.Users.Create(ctx, &models.User{
		Username:     "alice",
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	err = store.Transactions.Create(ctx, &models.Transaction{
		UserID:    u.ID,
		Amount:    decimal.RequireFromString("1.25"),
		Note:      []byte{0x01},
		NoteNonce: []byte{0x02},
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	list, err := store.Transactions.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOpen_IsIdempotentOnExistingDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(ctx, dsn)
	require.NoError(t, err)

	_, err = store.Users.Create(ctx, &models.User{
		Username:     "alice",
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// reopening must keep existing data and not re-run migrations
	store2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store2.Close() })

	got, err := store2.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://user:pw@localhost:5432/db"))
	assert.True(t, isPostgres("postgresql://localhost/db"))
	assert.False(t, isPostgres("securepay.db"))
	assert.False(t, isPostgres(":memory:"))
	assert.False(t, isPostgres("/var/lib/securepay/data.db"))
}
