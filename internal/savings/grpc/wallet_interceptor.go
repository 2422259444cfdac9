package grpc

import (
	"context"

	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type WalletInterceptorFabric struct {
	walletEnsurer domain.WalletEnsurer
	logger        logging.Logger
}

func NewWalletInterceptorFabric(
	walletEnsurer domain.WalletEnsurer,
	logger logging.Logger,
) *WalletInterceptorFabric {
	return &WalletInterceptorFabric{
		walletEnsurer: walletEnsurer,
		logger:        logger,
	}
}

// GetInterceptor must be chained after the user interceptor.
func (i *WalletInterceptorFabric) GetInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		userID, err := userIDFromContext(ctx)
		if err != nil {
			return nil, err
		}

		err = i.walletEnsurer.EnsureWallet(ctx, userID)
		if err != nil {
			i.logger.Error("failed to ensure wallet", "user_id", userID, "error", err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}

		return handler(ctx, req)
	}
}
