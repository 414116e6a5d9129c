// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every portal request. Some gateways reject
// requests without a browser-like agent string.
const UserAgent = "Mozilla/5.0 (compatible; campus-login)"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetFormData(form).Post(loginURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the given request timeout.
// Retries are disabled so each attempt makes exactly one submission.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
