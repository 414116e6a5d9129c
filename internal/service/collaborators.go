// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=collaborators.go -destination=../mock/service_collaborators_mock.go -package=mock

// ReachabilityProbe waits until the gateway answers.
// Implemented by [probe.Probe].
type ReachabilityProbe interface {
	// WaitReachable blocks until host answers, timeout has been used up or
	// ctx is cancelled, and reports whether host answered.
	WaitReachable(ctx context.Context, host string, timeout time.Duration) bool
}

// StatusReporter receives human-readable progress of a login attempt.
// Implementations must return promptly; the engine calls them inline.
type StatusReporter interface {
	ReportStatus(text string, isError bool)
}

// StatusReporterFunc adapts a plain function to [StatusReporter].
type StatusReporterFunc func(text string, isError bool)

func (f StatusReporterFunc) ReportStatus(text string, isError bool) {
	f(text, isError)
}

type nopReporter struct{}

func (nopReporter) ReportStatus(string, bool) {}
