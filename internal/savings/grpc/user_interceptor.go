package grpc

import (
	"context"
	"strings"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UserInterceptorFabric puts the caller's user id from the incoming metadata
// into the request context. Identity is asserted by the gateway.
type UserInterceptorFabric struct {
	logger logging.Logger
}

func NewUserInterceptorFabric(logger logging.Logger) *UserInterceptorFabric {
	return &UserInterceptorFabric{
		logger: logger,
	}
}

func (i *UserInterceptorFabric) GetInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		userID, err := getUserID(ctx)
		if err != nil {
			i.logger.Warn("rejected call without user id", "method", methodName(info), "error", err.Error())
			return nil, err
		}

		newCtx := context.WithValue(ctx, userIDContextKey, userID)

		return handler(newCtx, req)
	}
}

func getUserID(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is empty")
	}

	values := md.Get(savingsapi.UserIDMetadataKey)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", status.Error(codes.Unauthenticated, "user id is missing")
	}

	return strings.TrimSpace(values[0]), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok {
		return "", status.Error(codes.Internal, "user id not found in context")
	}

	return userID, nil
}

func methodName(info *grpc.UnaryServerInfo) string {
	if info == nil {
		return ""
	}

	return info.FullMethod
}
