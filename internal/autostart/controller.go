// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autostart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
)

//go:generate mockgen -source=controller.go -destination=../mock/autostart_mock.go -package=mock

// SilentArg is the launch argument passed to the registered program.
const SilentArg = "-silent"

// QueryTimeout bounds IsEnabled.
const QueryTimeout = 2 * time.Second

var (
	ErrNotElevated = errors.New("administrator rights are required")
	ErrEnable      = errors.New("failed to enable auto login")
	ErrDisable     = errors.New("failed to disable auto login")
)

// Controller manages the run-at-logon registration.
type Controller interface {
	// Enable replaces any existing registration with a new one.
	Enable() error
	// Disable removes the registration. A missing registration is not an error.
	Disable() error
	// IsEnabled reports whether a registration exists. It gives up after
	// QueryTimeout and reports false.
	IsEnabled() bool
}

// CommandRunner executes an external command and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)
	return cmd.CombinedOutput()
}

// New returns the controller for the current platform. The registered
// command is the running executable followed by SilentArg.
func New(cfg config.AutoStart, log *logger.Logger) (Controller, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	if runtime.GOOS == "windows" {
		return newSchtasksController(cfg.TaskName, exe, execRunner{}, IsElevated, log), nil
	}

	return newServiceController(cfg.TaskName, exe, log)
}
