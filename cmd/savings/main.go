package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/morrow-app/morrow/internal/pkg/env"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/bootstrap"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg, err := bootstrap.LoadSavingsConfig(os.Getenv(env.EnvSavingsConfigPath))
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		return
	}

	lis, err := net.Listen(networkProtocol, cfg.GrpcPort)
	if err != nil {
		defaultLogger.Error("failed to listen", "error", err.Error())
		return
	}

	app := bootstrap.NewSavingsApp(cfg, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		defaultLogger.Error("savings service stopped", "error", err.Error())
	}
}
