// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to
// the campus captive portal.
//
// The service layer depends on [PortalAdapter] only; the package ships an
// HTTP implementation ([NewHTTPPortalAdapter]) that posts the login form with
// resty. Transport failures are returned as errors wrapping [ErrLoginRequest]
// so that callers can use [errors.Is] regardless of the underlying cause.
package adapter

import (
	"context"

	"github.com/MKhiriev/campus-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter submits login requests to the captive portal.
type PortalAdapter interface {
	// SubmitLogin posts req as an URL-encoded form to the login endpoint and
	// returns the HTTP status code of the response. The response body is
	// read and discarded. Any response, whatever its status, is returned with
	// a nil error; an error means no response was received (DNS failure,
	// refused connection, timeout or cancelled ctx).
	SubmitLogin(ctx context.Context, req models.LoginRequest) (int, error)
}
