// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Fixed form values expected by the portal.
const (
	LoginOperation   = "pwdLogin"
	RememberPassword = "1"
)

// LoginRequest is the form submitted to the portal login endpoint.
// It is built once per attempt and discarded after submission.
type LoginRequest struct {
	UserName    string
	Password    string // hex cipher text, never the plain password
	AuthTag     int64
	Operation   string
	RememberPwd string
}

// NewLoginRequest projects the username, cipher text and auth tag into a
// portal form with the fixed operation and remember flags.
func NewLoginRequest(userName, encryptedPassword string, authTag int64) LoginRequest {
	return LoginRequest{
		UserName:    userName,
		Password:    encryptedPassword,
		AuthTag:     authTag,
		Operation:   LoginOperation,
		RememberPwd: RememberPassword,
	}
}

// FormData returns the url-encoded form fields.
func (r LoginRequest) FormData() map[string]string {
	return map[string]string{
		"opr":         r.Operation,
		"userName":    r.UserName,
		"pwd":         r.Password,
		"auth_tag":    strconv.FormatInt(r.AuthTag, 10),
		"rememberPwd": r.RememberPwd,
	}
}
