package settings_test

import (
	"context"
	"testing"

	"post-receptor/core/database"
	"post-receptor/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := settings.NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStore_SetAndSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, snap.HasAPIKey())
	assert.False(t, snap.HasAuthToken())

	require.NoError(t, store.Set(ctx, settings.OptionAPIKey, "sk-test"))
	require.NoError(t, store.Set(ctx, settings.OptionTargetLanguage, "en_US"))
	require.NoError(t, store.Set(ctx, settings.OptionTargetLanguage, "fr_FR"))

	snap, err = store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", snap.APIKey)
	assert.Equal(t, "fr_FR", snap.TargetLanguage)

	err = store.Set(ctx, "favorite_color", "blue")
	assert.ErrorIs(t, err, settings.ErrUnknownOption)
}

func TestStore_Bootstrap(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.Set(ctx, settings.OptionAuthToken, "rotated"))

	err := store.Bootstrap(ctx, settings.Config{
		OpenAIAPIKey:   "sk-boot",
		TargetLanguage: "en_US",
		AuthToken:      "from-env",
	})
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-boot", snap.APIKey)
	assert.Equal(t, "en_US", snap.TargetLanguage)
	assert.Equal(t, "rotated", snap.AuthToken, "stored values win over bootstrap values")
}

func TestStore_RegenerateToken(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	first, err := store.RegenerateToken(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := store.RegenerateToken(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, snap.AuthToken)
}

func TestStatic(t *testing.T) {
	src := settings.Static{APIKey: "k", AuthToken: "t"}
	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.HasAPIKey())
	assert.Equal(t, "t", snap.AuthToken)
}

func TestStore_VerifySchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := settings.NewStore(db)

	assert.ErrorIs(t, store.VerifySchema(), settings.ErrSchemaMismatch)

	require.NoError(t, store.Migrate())
	assert.NoError(t, store.VerifySchema())
}
