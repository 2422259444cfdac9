package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/gateway/domain"
	grpcwrap "github.com/morrow-app/morrow/internal/gateway/grpc"
	httpwrap "github.com/morrow-app/morrow/internal/gateway/infrastructure/http"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	shutdownTimeout = 5 * time.Second
)

type GatewayApp struct {
	cfg    GatewayConfig
	logger logging.Logger

	server *http.Server
}

func NewGatewayApp(cfg GatewayConfig, logger logging.Logger) *GatewayApp {
	return &GatewayApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *GatewayApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	grpcSavingsConn, err := grpc.NewClient(
		cfg.GrpcSavingsHost+cfg.GrpcSavingsPort,
		grpc.WithUnaryInterceptor(grpcwrap.NewUserIDInterceptor),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to savings grpc server: %w", err)
	}
	defer grpcSavingsConn.Close()

	savingsService := grpcwrap.NewSavingsAdapter(savingsapi.NewSavingsServiceClient(grpcSavingsConn))

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: newRouter(savingsService, savingsService),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "address", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *GatewayApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func newRouter(savingsService domain.SavingsService, rewardsService domain.RewardsService) *gin.Engine {
	router := gin.Default()

	savingsHandler := httpwrap.NewSavingsHandler(savingsService)
	rewardsHandler := httpwrap.NewRewardsHandler(rewardsService)

	api := router.Group("/api", httpwrap.NewUserMiddleware())
	{
		api.GET("/opportunities", savingsHandler.GetOpportunities)
		api.GET("/fresh-start", savingsHandler.GetFreshStart)
		api.POST("/withdrawal/impact", savingsHandler.CalculateWithdrawalImpact)
		api.POST("/transactions/sync", savingsHandler.SyncTransactions)
		api.POST("/claims", savingsHandler.Claim)
		api.POST("/vaults", savingsHandler.CreateVault)
		api.POST("/coach/chat", savingsHandler.Chat)

		api.GET("/wallet", rewardsHandler.GetWallet)
		api.GET("/wallet/entries", rewardsHandler.ListEntries)
		api.PUT("/wallet/payout-address", rewardsHandler.SetPayoutAddress)
		api.GET("/catalog", rewardsHandler.GetCatalog)
		api.POST("/redemptions", rewardsHandler.Redeem)
		api.POST("/donations", rewardsHandler.Donate)
		api.POST("/streak-bonus", rewardsHandler.ClaimStreakBonus)
	}

	return router
}
