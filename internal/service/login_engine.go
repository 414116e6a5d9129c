// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/campus-login/internal/adapter"
	"github.com/MKhiriev/campus-login/internal/cipher"
	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/store"
	"github.com/MKhiriev/campus-login/internal/utils"
	"github.com/MKhiriev/campus-login/models"
)

// Status messages shown in interactive mode.
const (
	msgEmptyCredentials = "username or password is empty"
	msgWaitingNetwork   = "waiting for network..."
	msgNetworkTimeout   = "network was not reachable within %s"
	msgSending          = "sending login request..."
	msgSent             = "login request sent, HTTP %d"
	msgRequestFailed    = "login request failed: %s"
	msgCancelled        = "login cancelled"
)

type loginEngine struct {
	probe    ReachabilityProbe
	portal   adapter.PortalAdapter
	history  store.LoginAttemptRepository
	reporter StatusReporter

	host    string
	timeout time.Duration

	now   func() time.Time
	ids   *utils.UUIDGenerator
	state atomic.Int32

	logger *logger.Logger
}

// NewLoginEngine wires a [LoginEngine]. history and reporter may be nil.
func NewLoginEngine(
	probe ReachabilityProbe,
	portal adapter.PortalAdapter,
	history store.LoginAttemptRepository,
	reporter StatusReporter,
	probeCfg config.Probe,
	logger *logger.Logger,
) LoginEngine {
	if reporter == nil {
		reporter = nopReporter{}
	}

	return &loginEngine{
		probe:    probe,
		portal:   portal,
		history:  history,
		reporter: reporter,
		host:     probeCfg.Host,
		timeout:  probeCfg.Timeout,
		now:      time.Now,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (e *loginEngine) State() State {
	return State(e.state.Load())
}

func (e *loginEngine) Login(ctx context.Context, creds models.Credentials, mode models.Mode) models.Outcome {
	log := e.logger.With().
		Str("mode", mode.String()).
		Str("username", creds.Username).
		Logger()

	var report StatusReporter = nopReporter{}
	if mode == models.ModeInteractive {
		report = e.reporter
	}

	outcome := e.run(ctx, creds, report, &logger.Logger{Logger: log})

	event := log.Info()
	if !outcome.OK() {
		event = log.Warn()
	}
	event.
		Str("outcome", outcome.Kind.String()).
		Int("http_status", outcome.HTTPStatus).
		Str("message", outcome.Message).
		Msg("login attempt finished")

	e.record(ctx, creds, mode, outcome)

	return outcome
}

func (e *loginEngine) run(ctx context.Context, creds models.Credentials, report StatusReporter, log *logger.Logger) models.Outcome {
	e.transition(StateIdle, log)

	if creds.IsBlank() {
		e.transition(StateFailed, log)
		report.ReportStatus(msgEmptyCredentials, true)
		return models.EmptyCredentials()
	}

	e.transition(StateProbingNetwork, log)
	report.ReportStatus(msgWaitingNetwork, false)
	if !e.probe.WaitReachable(ctx, e.host, e.timeout) {
		e.transition(StateFailed, log)
		if ctx.Err() != nil {
			report.ReportStatus(msgCancelled, true)
			return models.Cancelled()
		}
		report.ReportStatus(fmt.Sprintf(msgNetworkTimeout, e.timeout), true)
		return models.NetworkTimeout()
	}

	e.transition(StateEncrypting, log)
	authTag := e.now().UnixMilli()
	encrypted := cipher.Encrypt(strings.TrimSpace(creds.Password), strconv.FormatInt(authTag, 10))

	e.transition(StateSubmitting, log)
	report.ReportStatus(msgSending, false)
	if ctx.Err() != nil {
		e.transition(StateFailed, log)
		report.ReportStatus(msgCancelled, true)
		return models.Cancelled()
	}

	status, err := e.portal.SubmitLogin(ctx, models.NewLoginRequest(creds.Username, encrypted, authTag))
	if err != nil {
		e.transition(StateFailed, log)
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			report.ReportStatus(msgCancelled, true)
			return models.Cancelled()
		}
		report.ReportStatus(fmt.Sprintf(msgRequestFailed, err), true)
		return models.TransportError(err.Error(), authTag)
	}

	e.transition(StateSucceeded, log)
	report.ReportStatus(fmt.Sprintf(msgSent, status), false)
	return models.Success(status, authTag)
}

func (e *loginEngine) transition(to State, log *logger.Logger) {
	e.state.Store(int32(to))
	log.Debug().Str("state", to.String()).Msg("login state changed")
}

// record appends the outcome to the history. Failures are logged only.
func (e *loginEngine) record(ctx context.Context, creds models.Credentials, mode models.Mode, outcome models.Outcome) {
	if e.history == nil {
		return
	}

	attempt := models.LoginAttempt{
		ID:         e.ids.Generate(),
		Username:   strings.TrimSpace(creds.Username),
		Mode:       mode.String(),
		Outcome:    outcome.Kind.String(),
		HTTPStatus: outcome.HTTPStatus,
		Message:    outcome.Message,
		AuthTag:    outcome.AuthTag,
		CreatedAt:  e.now(),
	}

	// a cancelled attempt is still recorded
	if err := e.history.SaveAttempt(context.WithoutCancel(ctx), attempt); err != nil {
		e.logger.Warn().Err(err).Str("attempt_id", attempt.ID).Msg("failed to record login attempt")
	}
}
