package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

const DefaultTransferTimeout = 10 * time.Second

var cents = decimal.NewFromInt(100)

type ClaimRequest struct {
	UserID   string
	EntityID string
	// FromAccountID defaults to the entity's main account.
	FromAccountID string
	// ToAccountID defaults to the entity's first vault.
	ToAccountID string
	Amount      decimal.Decimal
	Kind        domain.SuggestionKind
}

type ClaimResult struct {
	TransferID  string
	RewardEntry domain.RewardEntry
}

// ClaimCase acts on an accepted suggestion: money is moved into a vault
// first and the reward is credited only once the transfer succeeded.
type ClaimCase struct {
	bankingProvider domain.BankingProvider
	rewardCreditor  domain.RewardCreditor
	transferTimeout time.Duration
	logger          logging.Logger
}

func NewClaimCase(
	bankingProvider domain.BankingProvider,
	rewardCreditor domain.RewardCreditor,
	transferTimeout time.Duration,
	logger logging.Logger,
) *ClaimCase {
	if transferTimeout <= 0 {
		transferTimeout = DefaultTransferTimeout
	}

	return &ClaimCase{
		bankingProvider: bankingProvider,
		rewardCreditor:  rewardCreditor,
		transferTimeout: transferTimeout,
		logger:          logger,
	}
}

func (c *ClaimCase) Claim(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	rewardKind, err := validateClaim(req)
	if err != nil {
		return ClaimResult{}, err
	}

	accounts, err := c.bankingProvider.GetAccountsByEntity(ctx, req.EntityID)
	if err != nil {
		return ClaimResult{}, &domain.TransferFailedError{Msg: "failed to list entity accounts", Cause: err}
	}

	from, to, err := pickAccounts(accounts, req.FromAccountID, req.ToAccountID)
	if err != nil {
		return ClaimResult{}, err
	}

	description := fmt.Sprintf("Morrow %s savings", req.Kind)

	transfer, err := c.transfer(ctx, domain.TransferRequest{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   req.Amount.Mul(cents).IntPart(),
		Description:   description,
	})
	if err != nil {
		return ClaimResult{}, err
	}

	// The money has moved, so the credit no longer follows the caller's cancellation.
	entry, err := c.rewardCreditor.CreditReward(context.WithoutCancel(ctx), req.UserID, req.Amount, rewardKind, description)
	if err != nil {
		c.logger.Error("transfer completed but reward was not credited",
			"user_id", req.UserID, "transfer_id", transfer.TransactionID, "error", err)
		return ClaimResult{TransferID: transfer.TransactionID}, fmt.Errorf("failed to credit reward for transfer %s: %w", transfer.TransactionID, err)
	}

	return ClaimResult{
		TransferID:  transfer.TransactionID,
		RewardEntry: entry,
	}, nil
}

// transfer bounds the provider call by the configured timeout even if the
// provider ignores context cancellation.
func (c *ClaimCase) transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.transferTimeout)
	defer cancel()

	done := make(chan transferOutcome, 1)
	go func() {
		result, err := c.bankingProvider.Transfer(ctx, req)
		done <- transferOutcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return abandonTransfer(done, ctx.Err())
	case out := <-done:
		if out.err != nil {
			timedOut := errors.Is(out.err, context.DeadlineExceeded)
			return domain.TransferResult{}, &domain.TransferFailedError{Msg: "transfer rejected", Timeout: timedOut, Cause: out.err}
		}

		return out.result, nil
	}
}

type transferOutcome struct {
	result domain.TransferResult
	err    error
}

// abandonTransfer reports a transfer whose context ended. A confirmation that
// already arrived still wins.
func abandonTransfer(done <-chan transferOutcome, ctxErr error) (domain.TransferResult, error) {
	select {
	case out := <-done:
		if out.err == nil {
			return out.result, nil
		}
	default:
	}

	timedOut := errors.Is(ctxErr, context.DeadlineExceeded)
	return domain.TransferResult{}, &domain.TransferFailedError{Msg: "transfer did not complete", Timeout: timedOut, Cause: ctxErr}
}

func validateClaim(req ClaimRequest) (domain.RewardKind, error) {
	if req.UserID == "" {
		return "", &domain.ValidationError{Msg: "user id is required"}
	}
	if req.EntityID == "" {
		return "", &domain.ValidationError{Msg: "entity id is required"}
	}
	if !req.Amount.IsPositive() {
		return "", &domain.ValidationError{Msg: "amount must be positive"}
	}

	amountCents := req.Amount.Mul(cents)
	if !amountCents.Equal(amountCents.Truncate(0)) {
		return "", &domain.ValidationError{Msg: "amount must be a whole number of cents"}
	}

	kind, ok := req.Kind.RewardKind()
	if !ok {
		return "", &domain.ValidationError{Msg: fmt.Sprintf("unknown suggestion kind %q", req.Kind)}
	}

	return kind, nil
}

func pickAccounts(accounts []domain.Account, fromID, toID string) (domain.Account, domain.Account, error) {
	var (
		from, to           domain.Account
		foundFrom, foundTo bool
	)

	for _, account := range accounts {
		if !foundFrom && (account.ID == fromID || (fromID == "" && account.IsMain)) {
			from, foundFrom = account, true
		}
		if !foundTo && !account.IsMain && (account.ID == toID || toID == "") {
			to, foundTo = account, true
		}
	}

	if !foundTo {
		return domain.Account{}, domain.Account{}, &domain.NoDestinationVaultError{Msg: "entity has no matching savings vault"}
	}
	if !foundFrom {
		return domain.Account{}, domain.Account{}, &domain.ValidationError{Msg: "source account not found"}
	}
	if from.ID == to.ID {
		return domain.Account{}, domain.Account{}, &domain.ValidationError{Msg: "source and destination accounts must differ"}
	}

	return from, to, nil
}
