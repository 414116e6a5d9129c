// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
)

// Storages groups the local stores into a single value that can be passed
// around the service layer.
type Storages struct {
	// Credentials is the key=value file holding the portal account.
	Credentials CredentialsStore
	// LoginAttempts is the SQLite-backed login history.
	LoginAttempts LoginAttemptRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     and its directory if they do not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the credentials file store to cfg.CredentialsFile, reading
//     cfg.LegacyCredentialsFile until the former exists.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Credentials:   NewCredentialsFileStore(cfg.CredentialsFile, cfg.LegacyCredentialsFile, logger),
		LoginAttempts: NewLoginAttemptRepository(db, logger),
		db:            db,
	}, nil
}

// NewCredentialsOnlyStorages wires the credentials file without a history
// database. Used when the database cannot be opened.
func NewCredentialsOnlyStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{Credentials: NewCredentialsFileStore(cfg.CredentialsFile, cfg.LegacyCredentialsFile, logger)}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
