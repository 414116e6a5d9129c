// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/campus-login/models"
)

// LoginEngine runs one login attempt end to end: credential check, network
// wait, password encryption and a single form submission.
type LoginEngine interface {
	// Login never panics and never returns an error: every path ends in an
	// [models.Outcome]. In [models.ModeSilent] no status is reported.
	// Cancelling ctx aborts the network wait at its next retry boundary or
	// the request before it is sent.
	Login(ctx context.Context, creds models.Credentials, mode models.Mode) models.Outcome

	// State returns the most recent transition made by any Login call on
	// this engine. Concurrent calls interleave, so it reflects whichever
	// call moved last; the result of a particular call is its Outcome.
	State() State
}

// AutoLoginService is what the user-facing surfaces work with: stored
// credentials, the login itself, the run-at-logon registration and the
// login history.
type AutoLoginService interface {
	// Credentials returns the stored credentials, empty when none are saved.
	Credentials() models.Credentials

	// SaveCredentials stores creds for later silent runs.
	SaveCredentials(creds models.Credentials) error

	// Login runs one attempt with the given credentials.
	Login(ctx context.Context, creds models.Credentials, mode models.Mode) models.Outcome

	// SilentLogin loads the stored credentials and, when both fields are
	// present, runs a silent attempt. ok is false when nothing was attempted.
	SilentLogin(ctx context.Context) (outcome models.Outcome, ok bool)

	// EnableAutoStart saves creds and registers the silent run at logon.
	EnableAutoStart(creds models.Credentials) error

	// DisableAutoStart saves creds and removes the registration.
	DisableAutoStart(creds models.Credentials) error

	// AutoStartEnabled reports whether the registration exists.
	AutoStartEnabled() bool

	// RecentAttempts returns up to limit history entries, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error)
}

// LoginJob repeats silent logins in the background.
type LoginJob interface {
	// Start stops any running job and starts a new one that logs in
	// immediately and then every interval.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for it to exit.
	Stop()
}
