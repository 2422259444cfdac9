package grpc

import (
	"context"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
)

// SavingsAdapter implements the gateway services on top of the savings gRPC
// client. Every call is bounded by its own deadline.
type SavingsAdapter struct {
	client savingsapi.SavingsServiceClient
}

func NewSavingsAdapter(client savingsapi.SavingsServiceClient) *SavingsAdapter {
	return &SavingsAdapter{
		client: client,
	}
}

func (a *SavingsAdapter) GetOpportunities(ctx context.Context) (*savingsapi.AnalyzeResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	return a.client.Analyze(limitCtx, &savingsapi.AnalyzeRequest{})
}

func (a *SavingsAdapter) GetFreshStart(ctx context.Context) (*savingsapi.FreshStartResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	return a.client.FreshStart(limitCtx, &savingsapi.FreshStartRequest{})
}

func (a *SavingsAdapter) CalculateWithdrawalImpact(ctx context.Context, req *savingsapi.WithdrawalImpactRequest) (*savingsapi.WithdrawalImpactResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	return a.client.WithdrawalImpact(limitCtx, req)
}

func (a *SavingsAdapter) SyncTransactions(ctx context.Context, transactions []*savingsapi.Transaction) (*savingsapi.SyncTransactionsResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &savingsapi.SyncTransactionsRequest{
		Transactions: transactions,
	}

	return a.client.SyncTransactions(limitCtx, req)
}

func (a *SavingsAdapter) Claim(ctx context.Context, req *savingsapi.ClaimRequest) (*savingsapi.ClaimResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, claimTimeLimit)
	defer cancel()

	return a.client.Claim(limitCtx, req)
}

func (a *SavingsAdapter) CreateVault(ctx context.Context, entityID, name string) (*savingsapi.Account, error) {
	limitCtx, cancel := context.WithTimeout(ctx, vaultTimeLimit)
	defer cancel()

	resp, err := a.client.CreateVault(limitCtx, &savingsapi.CreateVaultRequest{
		EntityID: entityID,
		Name:     name,
	})
	if err != nil {
		return nil, err
	}

	return resp.Vault, nil
}

func (a *SavingsAdapter) Chat(ctx context.Context, entityID string, messages []*savingsapi.ChatMessage) (string, error) {
	limitCtx, cancel := context.WithTimeout(ctx, coachTimeLimit)
	defer cancel()

	req := &savingsapi.CoachChatRequest{
		EntityID: entityID,
		Messages: messages,
	}

	resp, err := a.client.CoachChat(limitCtx, req)
	if err != nil {
		return "", err
	}

	return resp.Reply, nil
}

func (a *SavingsAdapter) GetWallet(ctx context.Context) (*savingsapi.Wallet, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	resp, err := a.client.GetWallet(limitCtx, &savingsapi.GetWalletRequest{})
	if err != nil {
		return nil, err
	}

	return resp.Wallet, nil
}

func (a *SavingsAdapter) ListEntries(ctx context.Context, limit int32) ([]*savingsapi.RewardEntry, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &savingsapi.ListRewardEntriesRequest{
		Limit: limit,
	}

	resp, err := a.client.ListRewardEntries(limitCtx, req)
	if err != nil {
		return nil, err
	}

	return resp.Entries, nil
}

func (a *SavingsAdapter) SetPayoutAddress(ctx context.Context, address string) error {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &savingsapi.SetPayoutAddressRequest{
		Address: address,
	}

	_, err := a.client.SetPayoutAddress(limitCtx, req)
	if err != nil {
		return err
	}

	return nil
}

func (a *SavingsAdapter) GetCatalog(ctx context.Context) (*savingsapi.GetCatalogResponse, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	return a.client.GetCatalog(limitCtx, &savingsapi.GetCatalogRequest{})
}

func (a *SavingsAdapter) Redeem(ctx context.Context, giftCardID, amount string) (*savingsapi.RewardEntry, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &savingsapi.RedeemRequest{
		GiftCardID: giftCardID,
		Amount:     amount,
	}

	resp, err := a.client.Redeem(limitCtx, req)
	if err != nil {
		return nil, err
	}

	return resp.Entry, nil
}

func (a *SavingsAdapter) Donate(ctx context.Context, charityID, amount string) (*savingsapi.RewardEntry, error) {
	limitCtx, cancel := context.WithTimeout(ctx, claimTimeLimit)
	defer cancel()

	req := &savingsapi.DonateRequest{
		CharityID: charityID,
		Amount:    amount,
	}

	resp, err := a.client.Donate(limitCtx, req)
	if err != nil {
		return nil, err
	}

	return resp.Entry, nil
}

func (a *SavingsAdapter) ClaimStreakBonus(ctx context.Context, streakWeeks int32) (*savingsapi.RewardEntry, error) {
	limitCtx, cancel := context.WithTimeout(ctx, claimTimeLimit)
	defer cancel()

	req := &savingsapi.ClaimStreakBonusRequest{
		StreakWeeks: streakWeeks,
	}

	resp, err := a.client.ClaimStreakBonus(limitCtx, req)
	if err != nil {
		return nil, err
	}

	return resp.Entry, nil
}
