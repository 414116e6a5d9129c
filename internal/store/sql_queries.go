// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/campus-login/models"
)

// sqlite uses "?" placeholders
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var loginAttemptColumns = []string{
	"id",
	"username",
	"mode",
	"outcome",
	"http_status",
	"message",
	"auth_tag",
	"created_at",
}

func buildInsertLoginAttemptQuery(attempt models.LoginAttempt) (string, []any, error) {
	return sqlBuilder.
		Insert(attempt.TableName()).
		Columns(loginAttemptColumns...).
		Values(
			attempt.ID,
			attempt.Username,
			attempt.Mode,
			attempt.Outcome,
			attempt.HTTPStatus,
			attempt.Message,
			attempt.AuthTag,
			attempt.CreatedAt.UTC(),
		).
		ToSql()
}

func buildSelectLastAttemptsQuery(limit int) (string, []any, error) {
	return sqlBuilder.
		Select(loginAttemptColumns...).
		From(models.LoginAttempt{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
