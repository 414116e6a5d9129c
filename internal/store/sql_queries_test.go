// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/campus-login/models"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertLoginAttemptQuery(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 30, 0, 0, time.FixedZone("CST", 8*3600))
	attempt := models.LoginAttempt{
		ID:         "0192f0c4-0000-7000-8000-000000000001",
		Username:   "alice",
		Mode:       "silent",
		Outcome:    "succeeded",
		HTTPStatus: 200,
		Message:    "",
		AuthTag:    1700000000000,
		CreatedAt:  created,
	}

	query, args, err := buildInsertLoginAttemptQuery(attempt)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into login_attempts"))
	for _, c := range loginAttemptColumns {
		require.Contains(t, q, c)
	}

	// sqlite placeholders, no $N
	require.Equal(t, len(loginAttemptColumns), strings.Count(query, "?"))
	require.NotContains(t, query, "$1")

	require.Len(t, args, len(loginAttemptColumns))
	require.Equal(t, attempt.ID, args[0])
	require.Equal(t, int64(1700000000000), args[6])
	// время хранится в UTC
	require.Equal(t, created.UTC(), args[7])
}

func Test_buildSelectLastAttemptsQuery(t *testing.T) {
	query, args, err := buildSelectLastAttemptsQuery(5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from login_attempts")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 5")
	require.Empty(t, args)
}
