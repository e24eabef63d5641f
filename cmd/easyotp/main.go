package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/easy-otp/internal/client"
	"github.com/MKhiriev/easy-otp/internal/config"
	"github.com/MKhiriev/easy-otp/internal/crypto"
	"github.com/MKhiriev/easy-otp/internal/identity"
	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/service"
	"github.com/MKhiriev/easy-otp/internal/store"
	"github.com/MKhiriev/easy-otp/internal/tui"
	"github.com/MKhiriev/easy-otp/internal/utils"
	"github.com/MKhiriev/easy-otp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("easyotp", "info").Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.ShowVersion {
		fmt.Println(buildInfo.String())
		return
	}

	log := logger.NewClientLogger("easyotp", cfg.Log.File, cfg.Log.Level).
		WithSession(utils.NewUUIDGenerator().Generate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	key := crypto.DeriveKey(identity.Resolve(identity.NewSystemSource(), log))

	sealer, err := crypto.NewSealer(cfg.Storage.Cipher, key)
	if err != nil {
		log.Fatal().Err(err).Msg("create sealer")
	}

	storage := store.NewFileOTPStorage(cfg.StorePath(), sealer, log)
	services := service.NewServices(storage, buildInfo, log)

	ui := tui.New(ctx, services, tui.Config{
		Clipboard: !cfg.UI.NoClipboard && !clipboard.Unsupported,
	}, log)

	app, err := client.NewApp(ui, cfg.UI.TickInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		// the log file is the only sink while the UI runs
		fmt.Fprintln(os.Stderr, "easyotp:", err)
		log.Fatal().Err(err).Msg("client run error")
	}
}
