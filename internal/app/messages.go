// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// campus login command line and terminal UI.
//
// All Msg* constants are human-readable message strings that are printed to
// the console or shown in the status line to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgAutoLoginEnabled is shown after the run-at-logon registration was
	// created.
	MsgAutoLoginEnabled = "auto login enabled"

	// MsgAutoLoginDisabled is shown after the registration was removed.
	MsgAutoLoginDisabled = "auto login disabled"

	// MsgAutoLoginFailed prefixes a failed enable or disable request.
	MsgAutoLoginFailed = "could not change auto login"

	// MsgRunAsAdministrator is shown when changing the registration needs
	// an elevated process.
	MsgRunAsAdministrator = "run the program as administrator to change auto login"

	// MsgAutoLoginUnavailable is shown when no registration mechanism
	// exists on this system.
	MsgAutoLoginUnavailable = "auto login is not available on this system"

	// MsgCredentialsNotSaved prefixes a failed credentials write.
	MsgCredentialsNotSaved = "could not save credentials"

	// MsgNoStoredCredentials is logged when a silent run finds nothing to
	// log in with.
	MsgNoStoredCredentials = "no stored credentials, nothing to do"

	// MsgWatchStarted is printed when watch mode begins. It takes the
	// login interval.
	MsgWatchStarted = "logging in every %s, press Ctrl+C to stop"
)
