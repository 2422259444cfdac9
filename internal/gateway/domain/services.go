package domain

import (
	"context"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
)

// UserIDContextKey is the request-scoped key the HTTP layer stores the caller's
// user id under. The gRPC client interceptor forwards it as metadata.
const UserIDContextKey = "user_id"

//go:generate mockgen -destination=../../../gen/mocks/gateway/mock_services.go -package=mocks . SavingsService,RewardsService

type SavingsService interface {
	GetOpportunities(ctx context.Context) (*savingsapi.AnalyzeResponse, error)
	GetFreshStart(ctx context.Context) (*savingsapi.FreshStartResponse, error)
	CalculateWithdrawalImpact(ctx context.Context, req *savingsapi.WithdrawalImpactRequest) (*savingsapi.WithdrawalImpactResponse, error)
	SyncTransactions(ctx context.Context, transactions []*savingsapi.Transaction) (*savingsapi.SyncTransactionsResponse, error)
	Claim(ctx context.Context, req *savingsapi.ClaimRequest) (*savingsapi.ClaimResponse, error)
	CreateVault(ctx context.Context, entityID, name string) (*savingsapi.Account, error)
	Chat(ctx context.Context, entityID string, messages []*savingsapi.ChatMessage) (string, error)
}

type RewardsService interface {
	GetWallet(ctx context.Context) (*savingsapi.Wallet, error)
	ListEntries(ctx context.Context, limit int32) ([]*savingsapi.RewardEntry, error)
	SetPayoutAddress(ctx context.Context, address string) error
	GetCatalog(ctx context.Context) (*savingsapi.GetCatalogResponse, error)
	Redeem(ctx context.Context, giftCardID, amount string) (*savingsapi.RewardEntry, error)
	Donate(ctx context.Context, charityID, amount string) (*savingsapi.RewardEntry, error)
	ClaimStreakBonus(ctx context.Context, streakWeeks int32) (*savingsapi.RewardEntry, error)
}
