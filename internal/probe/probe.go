// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"context"
	"time"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
)

// Defaults used when the probe configuration leaves a value unset.
const (
	DefaultAttemptTimeout = 2 * time.Second
	DefaultRetryInterval  = 3 * time.Second
)

//go:generate mockgen -source=probe.go -destination=../mock/pinger_mock.go -package=mock

// Pinger performs a single reachability check against host.
// A nil error means the host answered within timeout.
type Pinger interface {
	Ping(ctx context.Context, host string, timeout time.Duration) error
}

// Probe polls a host through a [Pinger] until it answers or the time
// budget is spent.
type Probe struct {
	pinger         Pinger
	attemptTimeout time.Duration
	retryInterval  time.Duration

	// sleep waits for d and reports false if ctx ended first.
	sleep func(ctx context.Context, d time.Duration) bool

	logger *logger.Logger
}

// New constructs a Probe that checks reachability with pinger using the
// per-attempt timeout and retry interval from cfg.
func New(pinger Pinger, cfg config.Probe, log *logger.Logger) *Probe {
	attemptTimeout := cfg.AttemptTimeout
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}

	return &Probe{
		pinger:         pinger,
		attemptTimeout: attemptTimeout,
		retryInterval:  retryInterval,
		sleep:          sleepContext,
		logger:         log,
	}
}

// WaitReachable blocks until host answers a check or timeout worth of retry
// intervals has been accounted. It returns true on the first successful
// check. A non-positive timeout returns false without checking.
//
// WaitReachable must not be called from a goroutine that has to stay
// responsive: in the worst case it blocks for the whole timeout.
func (p *Probe) WaitReachable(ctx context.Context, host string, timeout time.Duration) bool {
	var elapsed time.Duration
	attempt := 0

	for elapsed < timeout {
		attempt++
		err := p.pinger.Ping(ctx, host, p.attemptTimeout)
		if err == nil {
			p.logger.Debug().
				Str("host", host).
				Int("attempt", attempt).
				Msg("host is reachable")
			return true
		}

		p.logger.Debug().
			Err(err).
			Str("host", host).
			Int("attempt", attempt).
			Dur("elapsed", elapsed).
			Msg("host not reachable yet")

		if !p.sleep(ctx, p.retryInterval) {
			p.logger.Debug().Str("host", host).Msg("reachability wait cancelled")
			return false
		}
		elapsed += p.retryInterval
	}

	return false
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
