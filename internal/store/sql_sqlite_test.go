package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "history.db?_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("history.db"))
	assert.Equal(t, `C:\Users\me\CampusLogin\history.db?_busy_timeout=5000&_journal_mode=WAL`,
		sqliteDSN(`C:\Users\me\CampusLogin\history.db`))
	assert.Equal(t, "file:h.db?cache=shared&_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("file:h.db?cache=shared"))
}

func TestNewConnectSQLite_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "history.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewConnectSQLite_EmptyDSN(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), config.DB{DSN: "  "}, logger.Nop())

	assert.ErrorIs(t, err, ErrEmptyDSN)
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())
}
