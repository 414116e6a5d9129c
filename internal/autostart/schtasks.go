// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autostart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/campus-login/internal/logger"
)

const schtasksExe = "schtasks"

type schtasksController struct {
	taskName   string
	executable string

	runner       CommandRunner
	isElevated   func() bool
	queryTimeout time.Duration

	logger *logger.Logger
}

func newSchtasksController(taskName, executable string, runner CommandRunner, isElevated func() bool, log *logger.Logger) *schtasksController {
	return &schtasksController{
		taskName:     taskName,
		executable:   executable,
		runner:       runner,
		isElevated:   isElevated,
		queryTimeout: QueryTimeout,
		logger:       log,
	}
}

// taskCommand is the /TR value: the quoted executable path and the silent flag.
func (c *schtasksController) taskCommand() string {
	return `"` + c.executable + `" ` + SilentArg
}

func (c *schtasksController) Enable() error {
	if !c.isElevated() {
		return ErrNotElevated
	}

	c.deleteTask()

	out, err := c.runner.Run(context.Background(), schtasksExe,
		"/Create",
		"/SC", "ONLOGON",
		"/RL", "HIGHEST",
		"/F",
		"/TN", c.taskName,
		"/TR", c.taskCommand(),
	)
	if err != nil {
		c.logger.Err(err).Str("task", c.taskName).Str("output", strings.TrimSpace(string(out))).Msg("schtasks /Create failed")
		return fmt.Errorf("%w: %w: %s", ErrEnable, err, strings.TrimSpace(string(out)))
	}

	c.logger.Info().Str("task", c.taskName).Msg("logon task created")
	return nil
}

func (c *schtasksController) Disable() error {
	if !c.isElevated() {
		return ErrNotElevated
	}

	c.deleteTask()
	return nil
}

// deleteTask removes the task and ignores failures, including a missing task.
func (c *schtasksController) deleteTask() {
	out, err := c.runner.Run(context.Background(), schtasksExe, "/Delete", "/TN", c.taskName, "/F")
	if err != nil {
		c.logger.Debug().Err(err).Str("task", c.taskName).Str("output", strings.TrimSpace(string(out))).Msg("schtasks /Delete ignored")
		return
	}
	c.logger.Info().Str("task", c.taskName).Msg("logon task deleted")
}

func (c *schtasksController) IsEnabled() bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.queryTimeout)
	defer cancel()

	_, err := c.runner.Run(ctx, schtasksExe, "/Query", "/TN", c.taskName)
	return err == nil && ctx.Err() == nil
}
