// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginAttempt is one row of the local login history.
type LoginAttempt struct {
	// ID is a client-generated UUID.
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	Mode       string    `db:"mode"`
	Outcome    string    `db:"outcome"`
	HTTPStatus int       `db:"http_status"`
	Message    string    `db:"message"`
	AuthTag    int64     `db:"auth_tag"`
	CreatedAt  time.Time `db:"created_at"`
}

// TableName returns the name of the history table.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}
