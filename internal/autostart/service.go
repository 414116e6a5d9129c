// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autostart

import (
	"errors"
	"fmt"
	"time"

	"github.com/kardianos/service"

	"github.com/MKhiriev/campus-login/internal/logger"
)

// serviceManager is the subset of service.Service used by serviceController.
type serviceManager interface {
	Install() error
	Uninstall() error
	Status() (service.Status, error)
}

// program satisfies service.Interface. The registered unit starts the
// executable directly, so Start and Stop are never driven by the manager.
type program struct{}

func (program) Start(service.Service) error { return nil }
func (program) Stop(service.Service) error  { return nil }

type serviceController struct {
	name    string
	manager serviceManager

	queryTimeout time.Duration
	logger       *logger.Logger
}

// userServiceConfig describes the per-user unit that runs one silent login
// at logon. The process exits after a single attempt, so the manager must
// neither restart it (systemd) nor keep it alive (launchd).
func userServiceConfig(name, executable string) *service.Config {
	return &service.Config{
		Name:        name,
		DisplayName: "Campus network auto login",
		Description: "Logs in to the campus captive portal at user logon.",
		Executable:  executable,
		Arguments:   []string{SilentArg},
		Option: service.KeyValue{
			"UserService": true,
			"Restart":     "no",
			"KeepAlive":   false,
			"RunAtLoad":   true,
		},
	}
}

func newServiceController(name, executable string, log *logger.Logger) (*serviceController, error) {
	s, err := service.New(program{}, userServiceConfig(name, executable))
	if err != nil {
		return nil, fmt.Errorf("create user service: %w", err)
	}

	return &serviceController{
		name:         name,
		manager:      s,
		queryTimeout: QueryTimeout,
		logger:       log,
	}, nil
}

func (c *serviceController) Enable() error {
	if err := c.Disable(); err != nil {
		c.logger.Debug().Err(err).Str("service", c.name).Msg("removing previous registration failed")
	}

	if err := c.manager.Install(); err != nil {
		c.logger.Err(err).Str("service", c.name).Msg("user service install failed")
		return fmt.Errorf("%w: %w", ErrEnable, err)
	}

	c.logger.Info().Str("service", c.name).Msg("user service installed")
	return nil
}

func (c *serviceController) Disable() error {
	if _, err := c.manager.Status(); errors.Is(err, service.ErrNotInstalled) {
		return nil
	}

	if err := c.manager.Uninstall(); err != nil {
		c.logger.Err(err).Str("service", c.name).Msg("user service uninstall failed")
		return fmt.Errorf("%w: %w", ErrDisable, err)
	}

	c.logger.Info().Str("service", c.name).Msg("user service removed")
	return nil
}

func (c *serviceController) IsEnabled() bool {
	result := make(chan error, 1)
	go func() {
		_, err := c.manager.Status()
		result <- err
	}()

	select {
	case err := <-result:
		return err == nil
	case <-time.After(c.queryTimeout):
		c.logger.Warn().Str("service", c.name).Msg("user service status query timed out")
		return false
	}
}
