// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects how a login attempt interacts with its observers.
type Mode int

const (
	// ModeInteractive surfaces every intermediate status and failure.
	ModeInteractive Mode = iota
	// ModeSilent reports nothing; used for unattended logon-time runs.
	ModeSilent
)

// String returns the lowercase mode name stored in the login history.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeSilent:
		return "silent"
	default:
		return "unknown"
	}
}
