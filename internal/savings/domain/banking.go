package domain

import "context"

// Account is an account held at the banking provider. Every non-main account
// of an entity is a savings vault.
type Account struct {
	ID           string
	EntityID     string
	Name         string
	BalanceCents int64
	IsMain       bool
}

type TransferRequest struct {
	FromAccountID string
	ToAccountID   string
	AmountCents   int64
	Description   string
}

type TransferResult struct {
	TransactionID string
}

//go:generate mockgen -destination=../../../gen/mocks/savings/mock_banking.go -package=mocks . BankingProvider

type BankingProvider interface {
	GetAccountsByEntity(ctx context.Context, entityID string) ([]Account, error)
	// CreateVault opens an empty non-main account for the entity.
	CreateVault(ctx context.Context, entityID, name string) (Account, error)
	Transfer(ctx context.Context, req TransferRequest) (TransferResult, error)
}
