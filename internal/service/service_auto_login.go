// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/store"
	"github.com/MKhiriev/campus-login/models"
)

type autoLoginService struct {
	engine      LoginEngine
	credentials store.CredentialsStore
	history     store.LoginAttemptRepository
	autoStart   autostart.Controller

	logger *logger.Logger
}

// NewAutoLoginService builds an [AutoLoginService]. autoStart and history
// may be nil when the platform or the database is unavailable.
func NewAutoLoginService(
	engine LoginEngine,
	credentials store.CredentialsStore,
	history store.LoginAttemptRepository,
	autoStart autostart.Controller,
	logger *logger.Logger,
) AutoLoginService {
	return &autoLoginService{
		engine:      engine,
		credentials: credentials,
		history:     history,
		autoStart:   autoStart,
		logger:      logger,
	}
}

func (s *autoLoginService) Credentials() models.Credentials {
	return s.credentials.Load()
}

func (s *autoLoginService) SaveCredentials(creds models.Credentials) error {
	if err := s.credentials.Save(creds); err != nil {
		s.logger.Err(err).Str("func", "autoLoginService.SaveCredentials").Msg("failed to save credentials")
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (s *autoLoginService) Login(ctx context.Context, creds models.Credentials, mode models.Mode) models.Outcome {
	return s.engine.Login(ctx, creds, mode)
}

func (s *autoLoginService) SilentLogin(ctx context.Context) (models.Outcome, bool) {
	creds := s.credentials.Load()
	if creds.IsBlank() {
		s.logger.Info().Msg("no stored credentials, silent login skipped")
		return models.Outcome{}, false
	}

	return s.engine.Login(ctx, creds, models.ModeSilent), true
}

func (s *autoLoginService) EnableAutoStart(creds models.Credentials) error {
	if s.autoStart == nil {
		return ErrAutoStartUnavailable
	}
	if err := s.SaveCredentials(creds); err != nil {
		return err
	}
	return s.autoStart.Enable()
}

func (s *autoLoginService) DisableAutoStart(creds models.Credentials) error {
	if s.autoStart == nil {
		return ErrAutoStartUnavailable
	}
	if err := s.SaveCredentials(creds); err != nil {
		return err
	}
	return s.autoStart.Disable()
}

func (s *autoLoginService) AutoStartEnabled() bool {
	if s.autoStart == nil {
		return false
	}
	return s.autoStart.IsEnabled()
}

func (s *autoLoginService) RecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.LastAttempts(ctx, limit)
}
