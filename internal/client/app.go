package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/campus-login/internal/app"
	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/service"
)

type App struct {
	services *service.Services
	ui       UI

	launch  config.LaunchFlags
	workers config.Workers

	out    io.Writer
	logger *logger.Logger
}

func NewApp(services *service.Services, ui UI, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}

	return &App{
		services: services,
		ui:       ui,
		launch:   cfg.Launch,
		workers:  cfg.Workers,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run dispatches the launch mode. Precedence: enable, disable, silent,
// watch, interactive.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.launch.EnableAuto:
		return a.setAutoStart(true)
	case a.launch.DisableAuto:
		return a.setAutoStart(false)
	case a.launch.Silent:
		a.silentLogin(ctx)
		return nil
	case a.launch.Watch:
		return a.watch(ctx)
	default:
		if a.ui == nil {
			return errors.New("interactive mode is not available")
		}
		return a.ui.Run(ctx)
	}
}

// setAutoStart changes the registration using the stored credentials and
// prints the result.
func (a *App) setAutoStart(enable bool) error {
	creds := a.services.AutoLogin.Credentials()

	var err error
	if enable {
		err = a.services.AutoLogin.EnableAutoStart(creds)
	} else {
		err = a.services.AutoLogin.DisableAutoStart(creds)
	}

	if err != nil {
		a.logger.Err(err).Bool("enable", enable).Msg("auto login change failed")
		if errors.Is(err, autostart.ErrNotElevated) {
			fmt.Fprintln(a.out, app.MsgRunAsAdministrator)
		}
		return fmt.Errorf("%s: %w", app.MsgAutoLoginFailed, err)
	}

	if enable {
		fmt.Fprintln(a.out, app.MsgAutoLoginEnabled)
	} else {
		fmt.Fprintln(a.out, app.MsgAutoLoginDisabled)
	}
	return nil
}

func (a *App) silentLogin(ctx context.Context) {
	outcome, ok := a.services.AutoLogin.SilentLogin(ctx)
	if !ok {
		a.logger.Info().Msg(app.MsgNoStoredCredentials)
		return
	}
	a.logger.Info().Str("outcome", outcome.String()).Msg("silent login done")
}

// watch repeats silent logins until ctx is done or the process receives
// SIGINT or SIGTERM.
func (a *App) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := a.workers.LoginInterval
	if interval <= 0 {
		interval = service.DefaultLoginInterval
	}
	fmt.Fprintf(a.out, app.MsgWatchStarted+"\n", interval)

	a.services.LoginJob.Start(ctx, interval)
	<-ctx.Done()
	a.services.LoginJob.Stop()

	a.logger.Info().Msg("watch mode stopped")
	return nil
}
