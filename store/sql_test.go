package store_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/gofrs/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/require"

	"github.com/fir-lang/tree-sitter-fir/store"
)

// TestSQLSaveLoadDelete exercises store.SQL against a real database. It
// skips itself unless FIRSCAN_TEST_DSN and FIRSCAN_TEST_DRIVER are set, the
// same env-var gate sqlcode's own DB fixture used.
func TestSQLSaveLoadDelete(t *testing.T) {
	dsn := os.Getenv("FIRSCAN_TEST_DSN")
	driverName := os.Getenv("FIRSCAN_TEST_DRIVER")
	if dsn == "" || driverName == "" {
		t.Skip("FIRSCAN_TEST_DSN / FIRSCAN_TEST_DRIVER not set, skipping database-backed test")
	}

	db, err := sql.Open(driverName, dsn)
	require.NoError(t, err)
	defer db.Close()

	s := store.NewSQL(store.Wrap(db))

	ctx := context.Background()
	_, _ = db.ExecContext(ctx, "drop table fir_snapshots")
	_, err = db.ExecContext(ctx, s.CreateTableSQL())
	require.NoError(t, err)
	defer db.ExecContext(ctx, "drop table fir_snapshots")

	key := store.Key{Session: uuid.Must(uuid.NewV4()), Path: "a.fir"}
	want := store.Snapshot{Key: key, ByteOffset: 7, State: []byte{1, 2, 3, 4}}

	require.NoError(t, s.Save(ctx, want))

	got, ok, err := s.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want.ByteOffset, got.ByteOffset)
	require.Equal(t, want.State, got.State)

	require.NoError(t, s.Delete(ctx, key))
	_, ok, err = s.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)
}
