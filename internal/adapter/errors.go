// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidLoginURL = errors.New("invalid portal login url")
	ErrLoginRequest    = errors.New("login request failed")
)
