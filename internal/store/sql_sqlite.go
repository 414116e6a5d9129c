// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
)

const (
	memoryDSN = ":memory:"

	// silent runs at logon may overlap with an open UI, so writers wait
	// for the lock instead of failing with SQLITE_BUSY
	sqliteParams = "_busy_timeout=5000&_journal_mode=WAL"

	connectTimeout = 5 * time.Second
)

// NewConnectSQLite opens the login history database at cfg.DSN, creating
// its directory when needed. The file itself is created by the driver.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path := strings.TrimSpace(cfg.DSN)
	if path == "" {
		return nil, ErrEmptyDSN
	}

	if path != memoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("history database opened")

	return &DB{DB: conn, logger: log}, nil
}

// sqliteDSN appends the connection parameters to a plain file path. The
// driver strips the query part from non-URI paths, so Windows paths with
// backslashes are passed through unchanged.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqliteParams
}
