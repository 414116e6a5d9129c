// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
)

// spySilentLogin считает вызовы SilentLogin.
type spySilentLogin struct {
	calls   atomic.Int64
	skipped bool
}

func (s *spySilentLogin) SilentLogin(_ context.Context) (models.Outcome, bool) {
	s.calls.Add(1)
	if s.skipped {
		return models.Outcome{}, false
	}
	return models.NetworkTimeout(), true
}

// ── NewLoginJob ──────────────────────────────────────────────────────────────

func TestNewLoginJob_ReturnsInterface(t *testing.T) {
	job := NewLoginJob(&spySilentLogin{}, logger.Nop())
	require.NotNil(t, job)

	var _ LoginJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestLoginJob_Start_RunsImmediately(t *testing.T) {
	spy := &spySilentLogin{}
	job := NewLoginJob(spy, logger.Nop())

	// интервал большой, но первая попытка выполняется сразу
	job.Start(context.Background(), time.Hour)
	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestLoginJob_Start_RepeatsOnTicker(t *testing.T) {
	spy := &spySilentLogin{}
	job := NewLoginJob(spy, logger.Nop())

	// Интервал 10ms: за 55ms должно быть несколько попыток
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SilentLogin должен быть вызван несколько раз, вызвано: %d", got)
}

func TestLoginJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySilentLogin{}
	job := NewLoginJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestLoginJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewLoginJob(&spySilentLogin{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestLoginJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewLoginJob(&spySilentLogin{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestLoginJob_Start_NonPositiveIntervalUsesDefault(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySilentLogin{}
		job := NewLoginJob(spy, logger.Nop())

		// дефолт 10 минут: за 30ms только первая попытка
		job.Start(context.Background(), interval)
		time.Sleep(30 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(1), spy.calls.Load())
	}
}

func TestLoginJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySilentLogin{}
	job := NewLoginJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job: внутри вызовет Stop()
	job.Start(context.Background(), time.Hour)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	// после перезапуска с часовым интервалом: ровно одна новая попытка
	assert.Equal(t, callsBefore+1, spy.calls.Load())
}

func TestLoginJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewLoginJob(&spySilentLogin{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestLoginJob_SkippedAttempts_KeepRunning(t *testing.T) {
	spy := &spySilentLogin{skipped: true}
	job := NewLoginJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
