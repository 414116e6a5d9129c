package client

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/models"
)

type stubAutoLogin struct {
	service.AutoLoginService

	stored      models.Credentials
	silentCalls int
	silentOK    bool
	enableErr   error
	disableErr  error
	enabledWith []models.Credentials
	disabled    int
}

func (s *stubAutoLogin) Credentials() models.Credentials { return s.stored }

func (s *stubAutoLogin) SilentLogin(context.Context) (models.Outcome, bool) {
	s.silentCalls++
	return models.Success(200, 1), s.silentOK
}

func (s *stubAutoLogin) EnableAutoStart(creds models.Credentials) error {
	s.enabledWith = append(s.enabledWith, creds)
	return s.enableErr
}

func (s *stubAutoLogin) DisableAutoStart(models.Credentials) error {
	s.disabled++
	return s.disableErr
}

type stubJob struct {
	started  atomic.Int32
	stopped  atomic.Int32
	interval atomic.Int64
}

func (j *stubJob) Start(_ context.Context, interval time.Duration) {
	j.interval.Store(int64(interval))
	j.started.Add(1)
}

func (j *stubJob) Stop() { j.stopped.Add(1) }

type stubUI struct{ runs int }

func (u *stubUI) Run(context.Context) error {
	u.runs++
	return nil
}

func newTestApp(t *testing.T, launch config.LaunchFlags, svc *stubAutoLogin, job *stubJob, ui UI) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.StructuredConfig{Launch: launch, Workers: config.Workers{LoginInterval: time.Minute}}
	services := &service.Services{AutoLogin: svc, LoginJob: job}

	a, err := NewApp(services, ui, cfg, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a.out = out
	return a, out
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, nil, &config.StructuredConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_EnableAuto(t *testing.T) {
	svc := &stubAutoLogin{stored: models.Credentials{Username: "student", Password: "password"}}
	a, out := newTestApp(t, config.LaunchFlags{EnableAuto: true}, svc, &stubJob{}, nil)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []models.Credentials{svc.stored}, svc.enabledWith)
	assert.Equal(t, "auto login enabled\n", out.String())
}

func TestApp_Run_EnableAuto_NotElevated(t *testing.T) {
	svc := &stubAutoLogin{enableErr: autostart.ErrNotElevated}
	a, out := newTestApp(t, config.LaunchFlags{EnableAuto: true}, svc, &stubJob{}, nil)

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, autostart.ErrNotElevated)
	assert.Contains(t, out.String(), "administrator")
}

func TestApp_Run_DisableAuto(t *testing.T) {
	svc := &stubAutoLogin{}
	a, out := newTestApp(t, config.LaunchFlags{DisableAuto: true}, svc, &stubJob{}, nil)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, svc.disabled)
	assert.Equal(t, "auto login disabled\n", out.String())
}

func TestApp_Run_DisableAuto_Error(t *testing.T) {
	svc := &stubAutoLogin{disableErr: errors.New("access denied")}
	a, _ := newTestApp(t, config.LaunchFlags{DisableAuto: true}, svc, &stubJob{}, nil)

	assert.Error(t, a.Run(context.Background()))
}

func TestApp_Run_EnableTakesPrecedence(t *testing.T) {
	svc := &stubAutoLogin{}
	ui := &stubUI{}
	a, _ := newTestApp(t, config.LaunchFlags{EnableAuto: true, Silent: true, Watch: true}, svc, &stubJob{}, ui)

	require.NoError(t, a.Run(context.Background()))

	assert.Len(t, svc.enabledWith, 1)
	assert.Zero(t, svc.silentCalls)
	assert.Zero(t, ui.runs)
}

func TestApp_Run_Silent(t *testing.T) {
	for _, ok := range []bool{true, false} {
		svc := &stubAutoLogin{silentOK: ok}
		ui := &stubUI{}
		a, out := newTestApp(t, config.LaunchFlags{Silent: true}, svc, &stubJob{}, ui)

		require.NoError(t, a.Run(context.Background()))

		assert.Equal(t, 1, svc.silentCalls)
		assert.Zero(t, ui.runs)
		assert.Empty(t, out.String(), "в тихом режиме ничего не печатается")
	}
}

func TestApp_Run_Watch(t *testing.T) {
	job := &stubJob{}
	a, out := newTestApp(t, config.LaunchFlags{Watch: true}, &stubAutoLogin{}, job, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	assert.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	assert.Equal(t, int32(1), job.stopped.Load())
	assert.Equal(t, int64(time.Minute), job.interval.Load())
	assert.Contains(t, out.String(), "1m0s")
}

func TestApp_Run_Interactive(t *testing.T) {
	ui := &stubUI{}
	a, _ := newTestApp(t, config.LaunchFlags{}, &stubAutoLogin{}, &stubJob{}, ui)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestApp_Run_InteractiveWithoutUI(t *testing.T) {
	a, _ := newTestApp(t, config.LaunchFlags{}, &stubAutoLogin{}, &stubJob{}, nil)

	assert.Error(t, a.Run(context.Background()))
}
