package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	httpserver "skyfeedback/internal/adapters/http_server"
	"skyfeedback/internal/adapters/observability"
	"skyfeedback/internal/app"
	"skyfeedback/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Dur("interval", cfg.EmitInterval).
		Str("metrics_addr", cfg.MetricsAddr).
		Msg("emitter starting")

	if cfg.MetricsAddr != "" {
		reg := observability.InitRegistry()
		httpserver.Serve(cfg.MetricsAddr, reg)
	}

	svc := app.NewStreamService(app.NewGenerator(), os.Stdout, cfg.EmitInterval)

	// runs until the process is killed
	if err := svc.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("emit loop stopped")
	}
}
