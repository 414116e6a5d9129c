// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/campus-login/internal/app"
	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/service"
)

func humanizeAutoStartError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, autostart.ErrNotElevated):
		return app.MsgRunAsAdministrator
	case errors.Is(err, service.ErrAutoStartUnavailable):
		return app.MsgAutoLoginUnavailable
	default:
		return err.Error()
	}
}
