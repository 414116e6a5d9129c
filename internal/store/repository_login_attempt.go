// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
)

// loginAttemptRepository is the SQLite-backed implementation of
// [LoginAttemptRepository]. It appends to and reads from the
// "login_attempts" table.
type loginAttemptRepository struct {
	*DB
	logger *logger.Logger
}

func NewLoginAttemptRepository(db *DB, logger *logger.Logger) LoginAttemptRepository {
	logger.Debug().Msg("creating login attempt repository")
	return &loginAttemptRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *loginAttemptRepository) SaveAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLoginAttemptQuery(attempt)
	if err != nil {
		log.Err(err).Str("func", "loginAttemptRepository.SaveAttempt").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "loginAttemptRepository.SaveAttempt").
			Str("id", attempt.ID).
			Msg("failed to insert login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrAttemptNotSaved
	}

	return nil
}

func (r *loginAttemptRepository) LastAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildSelectLastAttemptsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "loginAttemptRepository.LastAttempts").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loginAttemptRepository.LastAttempts").Msg("failed to query login attempts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attempts := make([]models.LoginAttempt, 0, limit)
	for rows.Next() {
		var a models.LoginAttempt
		scanErr := rows.Scan(
			&a.ID,
			&a.Username,
			&a.Mode,
			&a.Outcome,
			&a.HTTPStatus,
			&a.Message,
			&a.AuthTag,
			&a.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "loginAttemptRepository.LastAttempts").Msg("failed to scan login attempt row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		attempts = append(attempts, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "loginAttemptRepository.LastAttempts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attempts, nil
}
