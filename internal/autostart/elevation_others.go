// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package autostart

import (
	"os"
	"os/exec"
)

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

func hideWindow(*exec.Cmd) {}
