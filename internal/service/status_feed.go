// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync/atomic"

// StatusUpdate is one message delivered through a [StatusFeed].
type StatusUpdate struct {
	Text    string
	IsError bool
}

// StatusFeed is a [StatusReporter] that buffers updates on a channel for a
// consumer running elsewhere, typically the UI loop. When the buffer is
// full new updates are dropped, so the reporting side never blocks.
type StatusFeed struct {
	updates chan StatusUpdate
	dropped atomic.Uint64
}

// NewStatusFeed creates a feed holding up to size pending updates.
func NewStatusFeed(size int) *StatusFeed {
	if size < 1 {
		size = 1
	}
	return &StatusFeed{updates: make(chan StatusUpdate, size)}
}

func (f *StatusFeed) ReportStatus(text string, isError bool) {
	select {
	case f.updates <- StatusUpdate{Text: text, IsError: isError}:
	default:
		f.dropped.Add(1)
	}
}

// Updates returns the receive side of the feed.
func (f *StatusFeed) Updates() <-chan StatusUpdate {
	return f.updates
}

// Dropped returns how many updates were discarded because the buffer was full.
func (f *StatusFeed) Dropped() uint64 {
	return f.dropped.Load()
}
