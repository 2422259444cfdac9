package sandbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/morrow-app/morrow/internal/savings/domain"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Bank simulates the banking provider: accounts live in memory and
// transfers settle instantly after the configured latency.
type Bank struct {
	mu       sync.Mutex
	accounts []*domain.Account
	latency  time.Duration
}

func NewBank(accounts []domain.Account, latency time.Duration) *Bank {
	bank := &Bank{latency: latency}
	for _, account := range accounts {
		a := account
		bank.accounts = append(bank.accounts, &a)
	}

	return bank
}

func (b *Bank) GetAccountsByEntity(ctx context.Context, entityID string) ([]domain.Account, error) {
	if err := wait(ctx, b.latency); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	accounts := make([]domain.Account, 0)
	for _, account := range b.accounts {
		if account.EntityID == entityID {
			accounts = append(accounts, *account)
		}
	}

	return accounts, nil
}

func (b *Bank) CreateVault(ctx context.Context, entityID, name string) (domain.Account, error) {
	if err := wait(ctx, b.latency); err != nil {
		return domain.Account{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	known := false
	for _, account := range b.accounts {
		if account.EntityID == entityID {
			known = true
			break
		}
	}
	if !known {
		return domain.Account{}, &domain.EntityNotFoundError{Msg: fmt.Sprintf("entity %s not found", entityID)}
	}

	vault := &domain.Account{
		ID:       "acc_" + uuid.NewString(),
		EntityID: entityID,
		Name:     name,
	}
	b.accounts = append(b.accounts, vault)

	return *vault, nil
}

func (b *Bank) Transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferResult, error) {
	if err := wait(ctx, b.latency); err != nil {
		return domain.TransferResult{}, err
	}
	if req.AmountCents <= 0 {
		return domain.TransferResult{}, fmt.Errorf("transfer amount must be positive, got %d", req.AmountCents)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.find(req.FromAccountID)
	if from == nil {
		return domain.TransferResult{}, fmt.Errorf("source %s: %w", req.FromAccountID, ErrAccountNotFound)
	}
	to := b.find(req.ToAccountID)
	if to == nil {
		return domain.TransferResult{}, fmt.Errorf("destination %s: %w", req.ToAccountID, ErrAccountNotFound)
	}

	if from.BalanceCents < req.AmountCents {
		return domain.TransferResult{}, fmt.Errorf("available %d, requested %d: %w", from.BalanceCents, req.AmountCents, ErrInsufficientFunds)
	}

	from.BalanceCents -= req.AmountCents
	to.BalanceCents += req.AmountCents

	return domain.TransferResult{TransactionID: "tx_" + uuid.NewString()}, nil
}

func (b *Bank) find(accountID string) *domain.Account {
	for _, account := range b.accounts {
		if account.ID == accountID {
			return account
		}
	}

	return nil
}

func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
