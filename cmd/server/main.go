package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/djsar/stagepage/internal/gateway"
	"github.com/djsar/stagepage/internal/gateway/middleware"
	"github.com/djsar/stagepage/internal/modules/media"
	"github.com/djsar/stagepage/internal/modules/notify"
	"github.com/djsar/stagepage/internal/modules/profile"
	profileApp "github.com/djsar/stagepage/internal/modules/profile/application"
	"github.com/djsar/stagepage/internal/shared/infrastructure/config"
	"github.com/djsar/stagepage/internal/shared/infrastructure/database"
	"github.com/djsar/stagepage/internal/shared/infrastructure/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.App.Environment)

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}
	defer rdb.Close()

	ctx := context.Background()

	mediaModule, err := media.NewModule(ctx, cfg.Media)
	if err != nil {
		log.WithError(err).Fatal("media storage init failed")
	}

	notifyModule := notify.NewModule(cfg.App.SignupWebhookURL, cfg.App.RootDomain, log)
	var announcer profileApp.Announcer
	if n := notifyModule.Notifier(); n != nil {
		announcer = n
	}

	profileModule := profile.NewModule(rdb, mediaModule.Service(), announcer, cfg.App.RootDomain, log)

	assets, err := gateway.NewAssetsProxy(cfg.App.AssetsOrigin)
	if err != nil {
		log.WithError(err).Fatal("assets origin init failed")
	}

	dispatcher := gateway.NewDispatcher(cfg.App.RootDomain, profileModule.SignupHandler(), profileModule.PageHandler(), assets)

	var handler http.Handler = dispatcher
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)

	server := gateway.NewServer(cfg.Server.Port, handler, log)
	if err := server.Start(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
