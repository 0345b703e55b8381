// Package contenttest provides an in-memory content store for tests.
package contenttest

import (
	"testing"

	"post-receptor/core/database"
	"post-receptor/feature/content"

	"github.com/stretchr/testify/require"
)

// NewStore returns a migrated SQLite backed store that lives for the test.
func NewStore(t testing.TB) *content.Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := content.NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}
