// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
)

// DefaultLoginInterval is used by LoginJob.Start for non-positive intervals.
const DefaultLoginInterval = 10 * time.Minute

type silentLoginRunner interface {
	SilentLogin(ctx context.Context) (models.Outcome, bool)
}

type loginJob struct {
	runner silentLoginRunner

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewLoginJob creates a loginJob that calls runner.SilentLogin on a ticker.
// The job is idle until Start is called.
func NewLoginJob(runner silentLoginRunner, logger *logger.Logger) LoginJob {
	return &loginJob{runner: runner, logger: logger}
}

// Start implements LoginJob. It stops any previously running job, then
// launches a background goroutine that logs in at once and then every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
// Attempts never overlap: a slow attempt delays the next tick.
func (j *loginJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultLoginInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *loginJob) runOnce(ctx context.Context) {
	outcome, ok := j.runner.SilentLogin(ctx)
	if !ok {
		return
	}
	j.logger.Debug().Str("outcome", outcome.String()).Msg("scheduled login done")
}

// Stop implements LoginJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *loginJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
