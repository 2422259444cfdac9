package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/application"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultEntriesLimit = 50

type SavingsServerGRPC struct {
	savingsapi.UnimplementedSavingsServiceServer

	analysisCase *application.AnalysisCase
	claimCase    *application.ClaimCase
	vaultCase    *application.VaultCase
	rewardLedger *application.RewardLedger
	coachCase    *application.CoachCase

	logger logging.Logger
	now    func() time.Time
}

func NewSavingsServerGRPC(
	analysisCase *application.AnalysisCase,
	claimCase *application.ClaimCase,
	vaultCase *application.VaultCase,
	rewardLedger *application.RewardLedger,
	coachCase *application.CoachCase,
	logger logging.Logger,
) *SavingsServerGRPC {
	return &SavingsServerGRPC{
		analysisCase: analysisCase,
		claimCase:    claimCase,
		vaultCase:    vaultCase,
		rewardLedger: rewardLedger,
		coachCase:    coachCase,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *SavingsServerGRPC) Analyze(ctx context.Context, _ *savingsapi.AnalyzeRequest) (*savingsapi.AnalyzeResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	opportunities, err := s.analysisCase.Analyze(ctx, userID, s.now())
	if err != nil {
		return nil, s.fail("failed to analyze transactions", userID, err)
	}

	return &savingsapi.AnalyzeResponse{
		Windfall:         toAPISuggestion(opportunities.Windfall),
		Sweep:            toAPISuggestion(opportunities.Sweep),
		Roundup:          toAPISuggestion(opportunities.Roundup),
		Landmark:         toAPILandmark(opportunities.Landmark),
		HasOpportunities: opportunities.HasOpportunities,
	}, nil
}

func (s *SavingsServerGRPC) FreshStart(_ context.Context, _ *savingsapi.FreshStartRequest) (*savingsapi.FreshStartResponse, error) {
	landmark, ok := s.analysisCase.FreshStart(s.now())
	if !ok {
		return &savingsapi.FreshStartResponse{}, nil
	}

	return &savingsapi.FreshStartResponse{
		Landmark: toAPILandmark(&landmark),
	}, nil
}

func (s *SavingsServerGRPC) WithdrawalImpact(ctx context.Context, req *savingsapi.WithdrawalImpactRequest) (*savingsapi.WithdrawalImpactResponse, error) {
	goal, err := parseAmount("goal_amount", req.GoalAmount)
	if err != nil {
		return nil, err
	}
	balance, err := parseAmount("current_balance", req.CurrentBalance)
	if err != nil {
		return nil, err
	}
	withdraw, err := parseAmount("withdraw_amount", req.WithdrawAmount)
	if err != nil {
		return nil, err
	}

	impact, err := s.analysisCase.WithdrawalImpact(goal, balance, withdraw)
	if err != nil {
		return nil, toStatus(err)
	}

	return &savingsapi.WithdrawalImpactResponse{
		ProgressBeforePct:    impact.ProgressBeforePct.String(),
		ProgressAfterPct:     impact.ProgressAfterPct.String(),
		ProgressLostPct:      impact.ProgressLostPct.String(),
		EstimatedDaysDelayed: impact.EstimatedDaysDelayed,
		Message:              impact.Message,
	}, nil
}

func (s *SavingsServerGRPC) SyncTransactions(ctx context.Context, req *savingsapi.SyncTransactionsRequest) (*savingsapi.SyncTransactionsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(req.Transactions))
	for _, t := range req.Transactions {
		converted, err := toDomainTransaction(t)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, converted)
	}

	saved, err := s.analysisCase.SyncTransactions(ctx, userID, transactions)
	if err != nil {
		return nil, s.fail("failed to sync transactions", userID, err)
	}

	return &savingsapi.SyncTransactionsResponse{
		Received: int32(len(transactions)),
		Saved:    int32(saved),
	}, nil
}

func (s *SavingsServerGRPC) Claim(ctx context.Context, req *savingsapi.ClaimRequest) (*savingsapi.ClaimResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	result, err := s.claimCase.Claim(ctx, application.ClaimRequest{
		UserID:        userID,
		EntityID:      req.EntityID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		Kind:          domain.SuggestionKind(req.Kind),
	})
	if err != nil {
		if result.TransferID != "" {
			s.logger.Error("claim left without reward", "user_id", userID, "transfer_id", result.TransferID, "error", err.Error())
			return nil, status.Error(codes.Internal, fmt.Sprintf("transfer %s completed but the reward was not credited", result.TransferID))
		}

		return nil, s.fail("failed to claim suggestion", userID, err)
	}

	return &savingsapi.ClaimResponse{
		TransferID: result.TransferID,
		Entry:      toAPIEntry(result.RewardEntry),
	}, nil
}

func (s *SavingsServerGRPC) CreateVault(ctx context.Context, req *savingsapi.CreateVaultRequest) (*savingsapi.CreateVaultResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	vault, err := s.vaultCase.CreateVault(ctx, req.EntityID, req.Name)
	if err != nil {
		return nil, s.fail("failed to create vault", userID, err)
	}

	return &savingsapi.CreateVaultResponse{
		Vault: toAPIAccount(vault),
	}, nil
}

func (s *SavingsServerGRPC) GetWallet(ctx context.Context, _ *savingsapi.GetWalletRequest) (*savingsapi.GetWalletResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	wallet, err := s.rewardLedger.GetWallet(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to get wallet", userID, err)
	}

	return &savingsapi.GetWalletResponse{
		Wallet: toAPIWallet(wallet),
	}, nil
}

func (s *SavingsServerGRPC) ListRewardEntries(ctx context.Context, req *savingsapi.ListRewardEntriesRequest) (*savingsapi.ListRewardEntriesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	limit := int(req.Limit)
	if limit == 0 {
		limit = defaultEntriesLimit
	}

	entries, err := s.rewardLedger.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, s.fail("failed to list reward entries", userID, err)
	}

	return &savingsapi.ListRewardEntriesResponse{
		Entries: toAPIEntries(entries),
	}, nil
}

func (s *SavingsServerGRPC) SetPayoutAddress(ctx context.Context, req *savingsapi.SetPayoutAddressRequest) (*savingsapi.SetPayoutAddressResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	err = s.rewardLedger.SetPayoutAddress(ctx, userID, req.Address)
	if err != nil {
		return nil, s.fail("failed to set payout address", userID, err)
	}

	return &savingsapi.SetPayoutAddressResponse{}, nil
}

func (s *SavingsServerGRPC) GetCatalog(_ context.Context, _ *savingsapi.GetCatalogRequest) (*savingsapi.GetCatalogResponse, error) {
	return toAPICatalog(s.rewardLedger.Catalog()), nil
}

func (s *SavingsServerGRPC) Redeem(ctx context.Context, req *savingsapi.RedeemRequest) (*savingsapi.RedeemResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	entry, err := s.rewardLedger.Redeem(ctx, userID, req.GiftCardID, amount)
	if err != nil {
		return nil, s.fail("failed to redeem gift card", userID, err)
	}

	return &savingsapi.RedeemResponse{
		Entry: toAPIEntry(entry),
	}, nil
}

func (s *SavingsServerGRPC) Donate(ctx context.Context, req *savingsapi.DonateRequest) (*savingsapi.DonateResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	entry, err := s.rewardLedger.Donate(ctx, userID, req.CharityID, amount)
	if err != nil {
		return nil, s.fail("failed to donate", userID, err)
	}

	return &savingsapi.DonateResponse{
		Entry: toAPIEntry(entry),
	}, nil
}

func (s *SavingsServerGRPC) ClaimStreakBonus(ctx context.Context, req *savingsapi.ClaimStreakBonusRequest) (*savingsapi.ClaimStreakBonusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.rewardLedger.CreditStreakBonus(ctx, userID, int(req.StreakWeeks))
	if err != nil {
		return nil, s.fail("failed to credit streak bonus", userID, err)
	}

	return &savingsapi.ClaimStreakBonusResponse{
		Entry: toAPIEntry(entry),
	}, nil
}

func (s *SavingsServerGRPC) CoachChat(ctx context.Context, req *savingsapi.CoachChatRequest) (*savingsapi.CoachChatResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reply, err := s.coachCase.Chat(ctx, userID, req.EntityID, toDomainMessages(req.Messages))
	if err != nil {
		if errors.Is(err, &domain.ValidationError{}) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		s.logger.Error("failed to chat with coach", "user_id", userID, "error", err.Error())
		return nil, status.Error(codes.Unavailable, "coach is unavailable")
	}

	return &savingsapi.CoachChatResponse{
		Reply: reply,
	}, nil
}

func (s *SavingsServerGRPC) fail(msg, userID string, err error) error {
	s.logger.Error(msg, "user_id", userID, "error", err.Error())
	return toStatus(err)
}
