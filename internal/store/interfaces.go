// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/campus-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialsStore persists the single account used for portal login.
type CredentialsStore interface {
	// Load returns the stored credentials. A missing or unreadable file
	// yields empty credentials, never an error.
	Load() models.Credentials
	// Save replaces the stored credentials, creating the parent directory
	// when needed.
	Save(creds models.Credentials) error
}

// LoginAttemptRepository is the local history of login outcomes.
type LoginAttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt models.LoginAttempt) error
	// LastAttempts returns up to limit attempts, newest first.
	LastAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error)
}
