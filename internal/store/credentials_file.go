// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/models"
)

const (
	credentialsHeader = "# campus-login configuration file"
	userKey           = "user"
	passKey           = "pass"
	utf8BOM           = "\ufeff"
)

type credentialsFileStore struct {
	path       string
	legacyPath string
	logger     *logger.Logger
}

// NewCredentialsFileStore returns a [CredentialsStore] backed by a plain
// key=value file at path. Lines starting with '#' and blank lines are
// skipped, keys are case-insensitive and both keys and values are trimmed.
//
// While path does not exist, Load reads legacyPath instead. Save always
// writes path. An empty legacyPath disables the fallback.
func NewCredentialsFileStore(path, legacyPath string, logger *logger.Logger) CredentialsStore {
	return &credentialsFileStore{path: path, legacyPath: legacyPath, logger: logger}
}

func (s *credentialsFileStore) Load() models.Credentials {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) && s.legacyPath != "" && s.legacyPath != s.path {
		data, err = os.ReadFile(s.legacyPath)
		if err == nil {
			s.logger.Info().Str("path", s.legacyPath).Msg("credentials read from legacy location")
		}
	}
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to read credentials file")
		}
		return models.Credentials{}
	}

	values := parseKeyValues(data)

	return models.Credentials{
		Username: values[userKey],
		Password: values[passKey],
	}
}

func parseKeyValues(data []byte) map[string]string {
	values := make(map[string]string)

	data = bytes.TrimPrefix(data, []byte(utf8BOM))
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return values
}

// Save writes the header comment followed by the user= and pass= lines.
// The username is trimmed; the password is stored as entered.
func (s *credentialsFileStore) Save(creds models.Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingCredentials, err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, credentialsHeader)
	fmt.Fprintf(&buf, "%s=%s\n", userKey, strings.TrimSpace(creds.Username))
	fmt.Fprintf(&buf, "%s=%s\n", passKey, creds.Password)

	if err := os.WriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingCredentials, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credentials saved")
	return nil
}
