// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/campus-login/internal/adapter"
	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/store"
)

// statusFeedSize is enough for every message of one interactive attempt.
const statusFeedSize = 16

type Services struct {
	Engine    LoginEngine
	AutoLogin AutoLoginService
	LoginJob  LoginJob
	// Status carries interactive-mode progress to the UI.
	Status *StatusFeed
}

func NewServices(
	storages *store.Storages,
	portal adapter.PortalAdapter,
	probe ReachabilityProbe,
	autoStart autostart.Controller,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	feed := NewStatusFeed(statusFeedSize)
	engine := NewLoginEngine(probe, portal, storages.LoginAttempts, feed, cfg.Probe, logger)
	autoLogin := NewAutoLoginService(engine, storages.Credentials, storages.LoginAttempts, autoStart, logger)

	return &Services{
		Engine:    engine,
		AutoLogin: autoLogin,
		LoginJob:  NewLoginJob(autoLogin, logger),
		Status:    feed,
	}
}
