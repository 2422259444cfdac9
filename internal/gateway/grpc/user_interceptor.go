package grpc

import (
	"context"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/gateway/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func NewUserIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if userID, ok := ctx.Value(domain.UserIDContextKey).(string); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, savingsapi.UserIDMetadataKey, userID)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}
