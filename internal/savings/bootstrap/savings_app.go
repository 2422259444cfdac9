package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgxpool"
	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/pkg/database"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/application"
	"github.com/morrow-app/morrow/internal/savings/domain"
	grpcwrap "github.com/morrow-app/morrow/internal/savings/grpc"
	"github.com/morrow-app/morrow/internal/savings/infrastructure/gemini"
	"github.com/morrow-app/morrow/internal/savings/infrastructure/postgres"
	"github.com/morrow-app/morrow/internal/savings/infrastructure/sandbox"
	"github.com/morrow-app/morrow/migrations"
	"google.golang.org/grpc"
)

var errCoachNotConfigured = errors.New("coaching is not configured")

type SavingsApp struct {
	cfg    SavingsConfig
	logger logging.Logger

	server *grpc.Server
	dbpool *pgxpool.Pool
}

func NewSavingsApp(cfg SavingsConfig, logger logging.Logger) *SavingsApp {
	return &SavingsApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *SavingsApp) Run(ctx context.Context, grpcLis net.Listener) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetURL()

	if err := database.MigrateDatabase(ctx, dbURL, migrations.FS, migrations.Dir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	coach, err := a.newCoach(ctx)
	if err != nil {
		return fmt.Errorf("failed to create coach: %w", err)
	}

	txManager := database.NewDelegateTxManager(dbpool, logger)
	walletStore := postgres.NewWalletStore(dbpool, txManager)
	transactionsRepository := postgres.NewTransactionsRepository(dbpool, txManager)

	bank := sandbox.NewBank(cfg.Sandbox.Accounts, cfg.Sandbox.BankLatency)
	paymentRail := sandbox.NewPaymentRail(cfg.Sandbox.RailLatency)

	rewardLedger := application.NewRewardLedger(walletStore, paymentRail, cfg.Catalog, cfg.Rewards, logger)
	analysisCase := application.NewAnalysisCase(transactionsRepository, cfg.Detection, logger)
	claimCase := application.NewClaimCase(bank, rewardLedger, cfg.TransferTimeout, logger)
	vaultCase := application.NewVaultCase(bank, logger)
	coachCase := application.NewCoachCase(transactionsRepository, bank, rewardLedger, coach, logger)

	server := createGRPCServer(
		grpcwrap.NewSavingsServerGRPC(analysisCase, claimCase, vaultCase, rewardLedger, coachCase, logger),
		walletStore,
		logger,
	)
	a.server = server

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting gRPC server", "address", grpcLis.Addr().String())

		if err := server.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *SavingsApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down gRPC server")
	a.server.GracefulStop()
	a.dbpool.Close()
	a.logger.Info("gRPC server stopped")
}

func (a *SavingsApp) newCoach(ctx context.Context) (domain.Coach, error) {
	if a.cfg.GeminiAPIKey == "" {
		a.logger.Warn("gemini api key is not set, coaching is disabled")
		return unconfiguredCoach{}, nil
	}

	return gemini.NewCoach(ctx, a.cfg.GeminiAPIKey, a.cfg.GeminiModel)
}

func createGRPCServer(
	savingsServer *grpcwrap.SavingsServerGRPC,
	walletEnsurer domain.WalletEnsurer,
	logger logging.Logger,
) *grpc.Server {
	userInterceptorFabric := grpcwrap.NewUserInterceptorFabric(logger)
	walletInterceptorFabric := grpcwrap.NewWalletInterceptorFabric(walletEnsurer, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(userInterceptorFabric.GetInterceptor(),
			walletInterceptorFabric.GetInterceptor()),
	)

	savingsapi.RegisterSavingsServiceServer(grpcServer, savingsServer)

	return grpcServer
}

type unconfiguredCoach struct{}

func (unconfiguredCoach) Reply(context.Context, domain.FinancialContext, []domain.ChatMessage) (string, error) {
	return "", errCoachNotConfigured
}
