// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/migrations"
)

// DB is the login history database handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the history schema to the latest version.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("history schema migration failed")
		return err
	}
	db.logger.Debug().Str("func", "DB.Migrate").Msg("history schema is up to date")
	return nil
}
