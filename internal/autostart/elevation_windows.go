// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build windows

package autostart

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token is elevated (UAC).
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
