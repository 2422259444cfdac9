package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/morrow-app/morrow/internal/gateway/bootstrap"
	"github.com/morrow-app/morrow/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	app := bootstrap.NewGatewayApp(bootstrap.LoadGatewayConfig(), defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("gateway stopped", "error", err.Error())
	}
}
