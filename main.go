package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"mosambot/app/client/openmeteo"
	"mosambot/app/client/speechkit"
	"mosambot/app/config"
	"mosambot/app/server"
	"mosambot/app/service/dialogue"
	"mosambot/app/service/engine"
	"mosambot/app/service/mcptool"
	"mosambot/app/service/queue"
	"mosambot/app/service/session"
	"mosambot/app/service/transcribe"
	"mosambot/app/service/weather"
	"mosambot/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, openmeteo.NewClient)
	do.Provide(di, speechkit.NewClient)
	do.Provide(di, weather.New)
	do.Provide(di, dialogue.New)
	do.Provide(di, session.New)
	do.Provide(di, queue.New)
	do.Provide(di, transcribe.New)
	do.Provide(di, engine.New)
	do.Provide(di, mcptool.New)
	do.Provide(di, server.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if cfg.MCP.Enabled {
		if err = do.MustInvoke[*mcptool.Service](di).Run(appCtx); err != nil {
			slog.Error("MCP server failed", "error", err)
		}
		return
	}

	go func() {
		if err := do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	go func() {
		do.MustInvoke[*engine.Service](di).Run(appCtx)
		cancel()
	}()

	<-appCtx.Done()
}
