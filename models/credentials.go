// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credentials is the campus account used for a single login attempt.
// It is passed by value and never mutated by the login engine.
type Credentials struct {
	// Username is sent to the portal as-is.
	Username string

	// Password is trimmed and encrypted with the per-attempt auth tag
	// before it leaves the process.
	Password string
}

// IsBlank reports whether either field is empty or consists only of
// whitespace. Blank credentials never reach the network.
func (c Credentials) IsBlank() bool {
	return strings.TrimSpace(c.Username) == "" || strings.TrimSpace(c.Password) == ""
}
