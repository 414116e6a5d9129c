// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the selected launch mode and blocks until it is done.
	Run(ctx context.Context) error
}

// UI is the interactive surface started when no other launch mode is set.
type UI interface {
	Run(ctx context.Context) error
}
