// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrSavingCredentials is returned when the credentials file or its
	// directory cannot be written.
	ErrSavingCredentials = errors.New("failed to save credentials")

	// ErrAttemptNotSaved is returned when an INSERT into login_attempts
	// completes without error but affects no rows.
	ErrAttemptNotSaved = errors.New("login attempt was not saved")

	// ErrEmptyDSN is returned when no history database path is configured.
	ErrEmptyDSN = errors.New("empty history database path")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan login attempt rows")
)
