// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/utils"
	"github.com/MKhiriev/campus-login/models"
)

type httpPortalAdapter struct {
	client   *utils.HTTPClient
	loginURL string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP implementation of [PortalAdapter].
// It normalises and validates portalCfg.LoginURL and configures the
// underlying HTTP client with portalCfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidLoginURL] if the URL is empty or
// cannot be parsed.
func NewHTTPPortalAdapter(portalCfg config.Portal, logger *logger.Logger) (PortalAdapter, error) {
	loginURL, err := normalizeLoginURL(portalCfg.LoginURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLoginURL, err)
	}

	return &httpPortalAdapter{
		client:   utils.NewHTTPClient(portalCfg.RequestTimeout),
		loginURL: loginURL,
		logger:   logger,
	}, nil
}

func normalizeLoginURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// SubmitLogin implements [PortalAdapter].
func (h *httpPortalAdapter) SubmitLogin(ctx context.Context, req models.LoginRequest) (int, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(req.FormData()).
		Post(h.loginURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLoginRequest, err)
	}

	h.logger.Debug().
		Str("url", h.loginURL).
		Int("status", resp.StatusCode()).
		Int("body_size", len(resp.Body())).
		Msg("portal responded")

	return resp.StatusCode(), nil
}
