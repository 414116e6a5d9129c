// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStorages_SQLiteRoundTrip проверяет всю цепочку на настоящем sqlite:
// создание файла, миграции, запись и чтение истории.
func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		CredentialsFile: filepath.Join(dir, "config.ini"),
		DB:              config.DB{DSN: filepath.Join(dir, "nested", "history.db")},
	}
	ctx := context.Background()

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		err := storages.LoginAttempts.SaveAttempt(ctx, models.LoginAttempt{
			ID:         fmt.Sprintf("id-%d", i),
			Username:   "alice",
			Mode:       "silent",
			Outcome:    "succeeded",
			HTTPStatus: 200,
			AuthTag:    int64(i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := storages.LoginAttempts.LastAttempts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, "id-1", got[1].ID)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	require.NoError(t, storages.Credentials.Save(models.Credentials{Username: "alice", Password: "x"}))
	assert.Equal(t, "alice", storages.Credentials.Load().Username)
}

func TestStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}
