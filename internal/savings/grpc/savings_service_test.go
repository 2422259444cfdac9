package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	savingsmocks "github.com/morrow-app/morrow/gen/mocks/savings"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/application"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/morrow-app/morrow/internal/savings/infrastructure/memory"
	"github.com/morrow-app/morrow/internal/savings/infrastructure/sandbox"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testAccounts = []domain.Account{
	{ID: "acc-main", EntityID: "entity-1", Name: "Checking", BalanceCents: 500000, IsMain: true},
	{ID: "acc-vault", EntityID: "entity-1", Name: "Rainy day", BalanceCents: 120000},
}

var testCatalog = domain.Catalog{
	GiftCards: []domain.GiftCard{
		{ID: "amazon", Brand: "Amazon", Denominations: []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(25)}},
	},
	Charities: []domain.Charity{
		{ID: "givedirectly", Name: "GiveDirectly", WalletAddress: "0xcharity"},
	},
}

type serverDeps struct {
	transactionSource *savingsmocks.MockTransactionSource
	coach             *savingsmocks.MockCoach
}

func newTestServer(t *testing.T, now time.Time) (*SavingsServerGRPC, *serverDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &serverDeps{
		transactionSource: savingsmocks.NewMockTransactionSource(ctrl),
		coach:             savingsmocks.NewMockCoach(ctrl),
	}

	bank := sandbox.NewBank(testAccounts, 0)
	ledger := application.NewRewardLedger(memory.NewWalletStore(), sandbox.NewPaymentRail(0), testCatalog,
		domain.DefaultRewardConfig(), logging.DiscardLogger)

	server := NewSavingsServerGRPC(
		application.NewAnalysisCase(d.transactionSource, domain.DefaultDetectionConfig(), logging.DiscardLogger),
		application.NewClaimCase(bank, ledger, time.Second, logging.DiscardLogger),
		application.NewVaultCase(bank, logging.DiscardLogger),
		ledger,
		application.NewCoachCase(d.transactionSource, bank, ledger, d.coach, logging.DiscardLogger),
		logging.DiscardLogger,
	)
	server.now = func() time.Time { return now }

	return server, d
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), userIDContextKey, userID)
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()

	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	assert.Equal(t, code, st.Code())
}

func TestSavingsServerGRPC_Analyze(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	server, d := newTestServer(t, now)

	d.transactionSource.EXPECT().GetTransactions(gomock.Any(), "user-1", gomock.Any(), now).Return([]domain.Transaction{
		{ID: "t1", Date: time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("12.75"), MerchantName: "Grocer"},
		{ID: "t2", Date: time.Date(2024, time.March, 27, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("9.10"), MerchantName: "Cafe"},
		{ID: "t3", Date: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("4.30"), MerchantName: "Bakery"},
	}, nil)

	resp, err := server.Analyze(userContext("user-1"), &savingsapi.AnalyzeRequest{})
	require.NoError(t, err)

	assert.True(t, resp.HasOpportunities)
	require.NotNil(t, resp.Roundup)
	require.NotNil(t, resp.Roundup.Roundup)
	assert.Nil(t, resp.Roundup.Windfall)
	assert.Equal(t, "1.85", resp.Roundup.RecommendedAmount)
	assert.Equal(t, int32(3), resp.Roundup.Roundup.TransactionCount)
	assert.Nil(t, resp.Windfall)

	require.NotNil(t, resp.Landmark)
	assert.Equal(t, string(domain.LandmarkMonthStart), resp.Landmark.Kind)
}

func TestSavingsServerGRPC_Analyze_SourceFailure(t *testing.T) {
	t.Parallel()

	server, d := newTestServer(t, time.Now())
	d.transactionSource.EXPECT().GetTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := server.Analyze(userContext("user-1"), &savingsapi.AnalyzeRequest{})
	requireCode(t, err, codes.Internal)
}

func TestSavingsServerGRPC_FreshStart(t *testing.T) {
	t.Parallel()

	// 2024-03-13 is a Wednesday in the middle of the month.
	server, _ := newTestServer(t, time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC))
	resp, err := server.FreshStart(context.Background(), &savingsapi.FreshStartRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Landmark)

	server.now = func() time.Time { return time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC) }
	resp, err = server.FreshStart(context.Background(), &savingsapi.FreshStartRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Landmark)
	assert.Equal(t, string(domain.LandmarkNewYear), resp.Landmark.Kind)
	assert.Equal(t, "0.15", resp.Landmark.SuggestedIncrease)
}

func TestSavingsServerGRPC_WithdrawalImpact(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())

	resp, err := server.WithdrawalImpact(context.Background(), &savingsapi.WithdrawalImpactRequest{
		GoalAmount:     "1000",
		CurrentBalance: "500",
		WithdrawAmount: "100",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.EstimatedDaysDelayed)
	assert.Equal(t, "10", resp.ProgressLostPct)

	_, err = server.WithdrawalImpact(context.Background(), &savingsapi.WithdrawalImpactRequest{
		GoalAmount:     "0",
		CurrentBalance: "500",
		WithdrawAmount: "100",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = server.WithdrawalImpact(context.Background(), &savingsapi.WithdrawalImpactRequest{
		GoalAmount:     "lots",
		CurrentBalance: "500",
		WithdrawAmount: "100",
	})
	requireCode(t, err, codes.InvalidArgument)
}

func TestSavingsServerGRPC_SyncTransactions(t *testing.T) {
	t.Parallel()

	server, d := newTestServer(t, time.Now())

	d.transactionSource.EXPECT().SaveTransactions(gomock.Any(), "user-1", []domain.Transaction{{
		ID:           "t1",
		Date:         time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.RequireFromString("-2500"),
		MerchantName: "Employer",
		CategoryTag:  "INCOME_WAGES",
	}}).Return(1, nil)

	resp, err := server.SyncTransactions(userContext("user-1"), &savingsapi.SyncTransactionsRequest{
		Transactions: []*savingsapi.Transaction{
			{ID: "t1", Date: "2024-03-26", Amount: "-2500", MerchantName: "Employer", CategoryTag: "INCOME_WAGES"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Received)
	assert.Equal(t, int32(1), resp.Saved)

	_, err = server.SyncTransactions(userContext("user-1"), &savingsapi.SyncTransactionsRequest{
		Transactions: []*savingsapi.Transaction{{ID: "t2", Date: "26/03/2024", Amount: "10"}},
	})
	requireCode(t, err, codes.InvalidArgument)
}

func TestSavingsServerGRPC_ClaimAndSpend(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())
	ctx := userContext("user-1")

	claim, err := server.Claim(ctx, &savingsapi.ClaimRequest{
		EntityID: "entity-1",
		Amount:   "450.00",
		Kind:     string(domain.SuggestionWindfall),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, claim.TransferID)
	assert.Equal(t, "22.50", claim.Entry.Amount)
	assert.Equal(t, "450.00", claim.Entry.RelatedSavingsAmount)
	assert.False(t, claim.Entry.Settled)

	wallet, err := server.GetWallet(ctx, &savingsapi.GetWalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, "22.50", wallet.Wallet.Balance)
	assert.Equal(t, "22.50", wallet.Wallet.TotalLifetimeRewards)

	redeem, err := server.Redeem(ctx, &savingsapi.RedeemRequest{GiftCardID: "amazon", Amount: "10"})
	require.NoError(t, err)
	assert.Equal(t, "-10.00", redeem.Entry.Amount)
	assert.Regexp(t, `^[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`, redeem.Entry.RedemptionCode)

	_, err = server.Redeem(ctx, &savingsapi.RedeemRequest{GiftCardID: "amazon", Amount: "25"})
	requireCode(t, err, codes.FailedPrecondition)

	_, err = server.Redeem(ctx, &savingsapi.RedeemRequest{GiftCardID: "amazon", Amount: "7"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = server.Redeem(ctx, &savingsapi.RedeemRequest{GiftCardID: "steam", Amount: "10"})
	requireCode(t, err, codes.NotFound)

	entries, err := server.ListRewardEntries(ctx, &savingsapi.ListRewardEntriesRequest{})
	require.NoError(t, err)
	require.Len(t, entries.Entries, 2)
}

func TestSavingsServerGRPC_Claim_Errors(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())

	tests := []struct {
		name         string
		ctx          context.Context
		request      *savingsapi.ClaimRequest
		expectedCode codes.Code
	}{
		{
			name:         "amount is not a number",
			ctx:          userContext("user-1"),
			request:      &savingsapi.ClaimRequest{EntityID: "entity-1", Amount: "ten", Kind: "windfall"},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "unknown kind",
			ctx:          userContext("user-1"),
			request:      &savingsapi.ClaimRequest{EntityID: "entity-1", Amount: "10", Kind: "lottery"},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "main account as destination",
			ctx:          userContext("user-1"),
			request:      &savingsapi.ClaimRequest{EntityID: "entity-1", ToAccountID: "acc-main", Amount: "10", Kind: "sweep"},
			expectedCode: codes.FailedPrecondition,
		},
		{
			name:         "bank rejects transfer",
			ctx:          userContext("user-1"),
			request:      &savingsapi.ClaimRequest{EntityID: "entity-1", Amount: "999999", Kind: "sweep"},
			expectedCode: codes.Unavailable,
		},
		{
			name:         "no user",
			ctx:          context.Background(),
			request:      &savingsapi.ClaimRequest{EntityID: "entity-1", Amount: "10", Kind: "sweep"},
			expectedCode: codes.Internal,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := server.Claim(tt.ctx, tt.request)
			requireCode(t, err, tt.expectedCode)
		})
	}
}

func TestSavingsServerGRPC_CreateVaultThenClaim(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())
	ctx := userContext("user-1")

	created, err := server.CreateVault(ctx, &savingsapi.CreateVaultRequest{EntityID: "entity-1", Name: "Holiday fund"})
	require.NoError(t, err)
	require.NotNil(t, created.Vault)
	assert.NotEmpty(t, created.Vault.ID)
	assert.Equal(t, "Holiday fund", created.Vault.Name)
	assert.Equal(t, "0.00", created.Vault.Balance)
	assert.False(t, created.Vault.IsMain)

	claim, err := server.Claim(ctx, &savingsapi.ClaimRequest{
		EntityID:    "entity-1",
		ToAccountID: created.Vault.ID,
		Amount:      "40",
		Kind:        string(domain.SuggestionSweep),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, claim.TransferID)

	_, err = server.CreateVault(ctx, &savingsapi.CreateVaultRequest{EntityID: "entity-404", Name: "Savings"})
	requireCode(t, err, codes.NotFound)

	_, err = server.CreateVault(ctx, &savingsapi.CreateVaultRequest{EntityID: "entity-1", Name: " "})
	requireCode(t, err, codes.InvalidArgument)
}

func TestSavingsServerGRPC_ClaimStreakBonus(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())
	ctx := userContext("user-1")

	resp, err := server.ClaimStreakBonus(ctx, &savingsapi.ClaimStreakBonusRequest{StreakWeeks: 4})
	require.NoError(t, err)
	assert.Equal(t, "10.00", resp.Entry.Amount)
	assert.Equal(t, string(domain.RewardStreakBonus), resp.Entry.Kind)

	_, err = server.ClaimStreakBonus(ctx, &savingsapi.ClaimStreakBonusRequest{StreakWeeks: 5})
	requireCode(t, err, codes.FailedPrecondition)
}

func TestSavingsServerGRPC_GetCatalog(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, time.Now())

	resp, err := server.GetCatalog(context.Background(), &savingsapi.GetCatalogRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GiftCards, 1)
	assert.Equal(t, []string{"10.00", "25.00"}, resp.GiftCards[0].Denominations)
	require.Len(t, resp.Charities, 1)
	assert.Equal(t, "0xcharity", resp.Charities[0].WalletAddress)
}

func TestSavingsServerGRPC_CoachChat(t *testing.T) {
	t.Parallel()

	server, d := newTestServer(t, time.Now())
	ctx := userContext("user-1")

	_, err := server.CoachChat(ctx, &savingsapi.CoachChatRequest{
		Messages: []*savingsapi.ChatMessage{{Role: "assistant", Content: "Hi!"}},
	})
	requireCode(t, err, codes.InvalidArgument)

	d.transactionSource.EXPECT().GetTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	d.coach.EXPECT().Reply(gomock.Any(), gomock.Any(), []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "Can I afford a trip?"}}).
		Return("Set aside $50 a week.", nil)

	resp, err := server.CoachChat(ctx, &savingsapi.CoachChatRequest{
		Messages: []*savingsapi.ChatMessage{{Role: "user", Content: "Can I afford a trip?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Set aside $50 a week.", resp.Reply)

	d.coach.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Return("", assert.AnError)

	_, err = server.CoachChat(ctx, &savingsapi.CoachChatRequest{
		Messages: []*savingsapi.ChatMessage{{Role: "user", Content: "Again?"}},
	})
	requireCode(t, err, codes.Unavailable)
}
