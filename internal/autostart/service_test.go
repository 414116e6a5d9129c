// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package autostart

import (
	"errors"
	"testing"
	"time"

	"github.com/kardianos/service"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	installed    bool
	installErr   error
	uninstallErr error
	statusDelay  time.Duration

	installs, uninstalls int
}

func (f *fakeManager) Install() error {
	f.installs++
	if f.installErr != nil {
		return f.installErr
	}
	f.installed = true
	return nil
}

func (f *fakeManager) Uninstall() error {
	f.uninstalls++
	if f.uninstallErr != nil {
		return f.uninstallErr
	}
	f.installed = false
	return nil
}

func (f *fakeManager) Status() (service.Status, error) {
	time.Sleep(f.statusDelay)
	if !f.installed {
		return service.StatusUnknown, service.ErrNotInstalled
	}
	return service.StatusStopped, nil
}

func newTestServiceController(m *fakeManager) *serviceController {
	return &serviceController{
		name:         "CampusAutoLogin",
		manager:      m,
		queryTimeout: QueryTimeout,
		logger:       logger.Nop(),
	}
}

func TestServiceController_EnableFresh(t *testing.T) {
	m := &fakeManager{}
	c := newTestServiceController(m)

	require.NoError(t, c.Enable())

	assert.Equal(t, 1, m.installs)
	assert.Equal(t, 0, m.uninstalls)
	assert.True(t, c.IsEnabled())
}

func TestServiceController_EnableReplacesExisting(t *testing.T) {
	m := &fakeManager{installed: true}
	c := newTestServiceController(m)

	require.NoError(t, c.Enable())

	assert.Equal(t, 1, m.uninstalls)
	assert.Equal(t, 1, m.installs)
}

func TestServiceController_EnableInstallError(t *testing.T) {
	m := &fakeManager{installErr: errors.New("permission denied")}
	c := newTestServiceController(m)

	err := c.Enable()

	assert.ErrorIs(t, err, ErrEnable)
	assert.False(t, c.IsEnabled())
}

func TestServiceController_DisableNotInstalled(t *testing.T) {
	m := &fakeManager{}
	c := newTestServiceController(m)

	assert.NoError(t, c.Disable())
	assert.Equal(t, 0, m.uninstalls)
}

func TestServiceController_DisableError(t *testing.T) {
	m := &fakeManager{installed: true, uninstallErr: errors.New("systemctl failed")}
	c := newTestServiceController(m)

	assert.ErrorIs(t, c.Disable(), ErrDisable)
}

func TestServiceController_IsEnabledTimeout(t *testing.T) {
	m := &fakeManager{installed: true, statusDelay: 200 * time.Millisecond}
	c := newTestServiceController(m)
	c.queryTimeout = 10 * time.Millisecond

	assert.False(t, c.IsEnabled())
}

func TestNewServiceController_Config(t *testing.T) {
	c, err := newServiceController("CampusAutoLogin", "/usr/local/bin/campus-login", logger.Nop())
	if err != nil {
		// no supported service manager on this host
		t.Skipf("service manager unavailable: %v", err)
	}

	assert.Equal(t, "CampusAutoLogin", c.name)
	assert.NotNil(t, c.manager)
}

func TestUserServiceConfig(t *testing.T) {
	cfg := userServiceConfig("CampusAutoLogin", "/usr/local/bin/campus-login")

	assert.Equal(t, "CampusAutoLogin", cfg.Name)
	assert.Equal(t, "/usr/local/bin/campus-login", cfg.Executable)
	assert.Equal(t, []string{SilentArg}, cfg.Arguments)

	// single login per logon: a failed run must not be restarted or kept alive
	assert.Equal(t, "no", cfg.Option["Restart"])
	assert.Equal(t, false, cfg.Option["KeepAlive"])
	assert.Equal(t, true, cfg.Option["RunAtLoad"])
	assert.Equal(t, true, cfg.Option["UserService"])
}
