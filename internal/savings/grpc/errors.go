package grpc

import (
	"context"
	"errors"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain failures onto gRPC codes. Anything unrecognized is
// reported as an internal error without leaking its text.
func toStatus(err error) error {
	var transferErr *domain.TransferFailedError

	switch {
	case errors.Is(err, &domain.ValidationError{}),
		errors.Is(err, &domain.InvalidGoalError{}),
		errors.Is(err, &domain.InvalidDenominationError{}):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, &domain.GiftCardNotFoundError{}),
		errors.Is(err, &domain.CharityNotFoundError{}),
		errors.Is(err, &domain.WalletNotFoundError{}),
		errors.Is(err, &domain.EntityNotFoundError{}):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		return status.Error(codes.FailedPrecondition, "insufficient reward balance")
	case errors.Is(err, &domain.NoDestinationVaultError{}),
		errors.Is(err, &domain.StreakNotEligibleError{}):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &transferErr):
		if transferErr.Timeout {
			return status.Error(codes.DeadlineExceeded, "transfer timed out")
		}
		return status.Error(codes.Unavailable, "transfer failed")
	case errors.Is(err, &domain.BankingUnavailableError{}):
		return status.Error(codes.Unavailable, "banking provider unavailable")
	case errors.Is(err, &domain.ExternalSettlementUnavailableError{}):
		return status.Error(codes.Unavailable, "payment rail unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	return status.Error(codes.Internal, "internal error")
}
