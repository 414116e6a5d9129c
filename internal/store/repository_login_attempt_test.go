// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAttemptRepo(t *testing.T) (*loginAttemptRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &loginAttemptRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func sampleAttempt() models.LoginAttempt {
	return models.LoginAttempt{
		ID:         "id-1",
		Username:   "alice",
		Mode:       "interactive",
		Outcome:    "succeeded",
		HTTPStatus: 200,
		AuthTag:    1700000000000,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ── SaveAttempt ──────────────────────────────────────────────────────────────

func TestSaveAttempt_Success(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	a := sampleAttempt()
	mock.ExpectExec("INSERT INTO login_attempts").
		WithArgs(a.ID, a.Username, a.Mode, a.Outcome, a.HTTPStatus, a.Message, a.AuthTag, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveAttempt(context.Background(), a)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttempt_ExecError(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO login_attempts").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveAttempt(context.Background(), sampleAttempt())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttempt_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO login_attempts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveAttempt(context.Background(), sampleAttempt())

	assert.ErrorIs(t, err, ErrAttemptNotSaved)
}

// ── LastAttempts ─────────────────────────────────────────────────────────────

func TestLastAttempts_Success(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	newer := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(loginAttemptColumns).
		AddRow("id-2", "alice", "silent", "network_timeout", 0, "", 0, newer).
		AddRow("id-1", "alice", "interactive", "succeeded", 200, "", 1700000000000, older)

	mock.ExpectQuery("SELECT (.+) FROM login_attempts ORDER BY created_at DESC, id DESC LIMIT 2").
		WillReturnRows(rows)

	got, err := repo.LastAttempts(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, "network_timeout", got[0].Outcome)
	assert.Equal(t, 200, got[1].HTTPStatus)
	assert.Equal(t, int64(1700000000000), got[1].AuthTag)
	assert.Equal(t, older, got[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastAttempts_NonPositiveLimit(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	got, err := repo.LastAttempts(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
	// запросов к базе быть не должно
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastAttempts_QueryError(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM login_attempts").
		WillReturnError(errors.New("no such table"))

	_, err := repo.LastAttempts(context.Background(), 10)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLastAttempts_ScanError(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(loginAttemptColumns).
		AddRow("id-1", "alice", "silent", "succeeded", "not-a-number", "", 0, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM login_attempts").WillReturnRows(rows)

	_, err := repo.LastAttempts(context.Background(), 10)

	assert.ErrorIs(t, err, ErrScanningRows)
}
