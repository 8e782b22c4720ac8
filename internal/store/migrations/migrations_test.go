package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markd/markd/internal/store"
)

func TestUp_CreatesPostsTable(t *testing.T) {
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(db.DB))

	_, err = db.Exec(`INSERT INTO posts (id, created_at, title, body) VALUES ('x', '2023-11-05 12:30:00', 't', 'b')`)
	require.NoError(t, err)
}

func TestUp_SecondRunIsNoOp(t *testing.T) {
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Up(db.DB))
	require.NoError(t, Up(db.DB))
}
