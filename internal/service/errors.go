// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAutoStartUnavailable is returned when no run-at-logon mechanism
	// could be set up on this platform.
	ErrAutoStartUnavailable = errors.New("auto login is not supported on this system")
)
