package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/campus-login/internal/adapter"
	"github.com/MKhiriev/campus-login/internal/autostart"
	"github.com/MKhiriev/campus-login/internal/client"
	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/probe"
	"github.com/MKhiriev/campus-login/internal/service"
	"github.com/MKhiriev/campus-login/internal/store"
	"github.com/MKhiriev/campus-login/internal/tui"
	"github.com/MKhiriev/campus-login/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "campus-login"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Launch.Version {
		fmt.Println(buildInfo.String())
		return
	}

	// stdout belongs to the UI in interactive mode and is hidden in silent mode
	interactive := !cfg.Launch.EnableAuto && !cfg.Launch.DisableAuto && !cfg.Launch.Watch
	log := logger.NewClientLogger(role, cfg.Log.Dir, interactive)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Warn().Err(err).Msg("login history is unavailable")
		storages = store.NewCredentialsOnlyStorages(cfg.Storage, log)
	}
	defer storages.Close()

	portal, err := adapter.NewHTTPPortalAdapter(cfg.Portal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	autoStart, err := autostart.New(cfg.AutoStart, log)
	if err != nil {
		log.Warn().Err(err).Msg("auto login is unavailable")
		autoStart = nil
	}

	gateway := probe.New(probe.NewICMPPinger(), cfg.Probe, log)
	services := service.NewServices(storages, portal, gateway, autoStart, cfg, log)
	ui := tui.New(services.AutoLogin, services.Status, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		storages.Close()
		os.Exit(1)
	}
}
