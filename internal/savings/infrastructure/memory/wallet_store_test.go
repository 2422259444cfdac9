package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendEntry(kind domain.RewardKind, amount string) domain.WalletUpdateFn {
	return func(_ context.Context, wallet domain.WalletSnapshot) (domain.RewardEntry, error) {
		return domain.RewardEntry{
			ID:       fmt.Sprintf("%s-%s", kind, amount),
			UserID:   wallet.UserID,
			Amount:   decimal.RequireFromString(amount),
			Currency: domain.RewardCurrency,
			Kind:     kind,
		}, nil
	}
}

func TestWalletStore_UpdateWallet(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		updates []domain.WalletUpdateFn

		expectedErr      error
		expectedBalance  string
		expectedLifetime string
		expectedEntries  int
	}

	tests := []testCase{
		{
			name: "credits add to balance and lifetime",
			updates: []domain.WalletUpdateFn{
				appendEntry(domain.RewardWindfall, "22.50"),
				appendEntry(domain.RewardRoundup, "0.23"),
			},
			expectedBalance:  "22.73",
			expectedLifetime: "22.73",
			expectedEntries:  2,
		},
		{
			name: "debit lowers balance only",
			updates: []domain.WalletUpdateFn{
				appendEntry(domain.RewardWindfall, "30"),
				appendEntry(domain.RewardRedemption, "-25"),
			},
			expectedBalance:  "5",
			expectedLifetime: "30",
			expectedEntries:  2,
		},
		{
			name: "overdraft is rejected",
			updates: []domain.WalletUpdateFn{
				appendEntry(domain.RewardSweep, "3"),
				appendEntry(domain.RewardRedemption, "-10"),
			},
			expectedErr:      &domain.InsufficientBalanceError{},
			expectedBalance:  "3",
			expectedLifetime: "3",
			expectedEntries:  1,
		},
		{
			name: "failing update leaves wallet unchanged",
			updates: []domain.WalletUpdateFn{
				appendEntry(domain.RewardSweep, "3"),
				func(context.Context, domain.WalletSnapshot) (domain.RewardEntry, error) {
					return domain.RewardEntry{}, &domain.InvalidDenominationError{Msg: "bad amount"}
				},
			},
			expectedErr:      &domain.InvalidDenominationError{},
			expectedBalance:  "3",
			expectedLifetime: "3",
			expectedEntries:  1,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			store := NewWalletStore()
			require.NoError(t, store.EnsureWallet(ctx, "user-1"))

			var err error
			for _, update := range tt.updates {
				_, err = store.UpdateWallet(ctx, "user-1", update)
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			wallet, err := store.FetchWallet(ctx, "user-1")
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expectedBalance).Equal(wallet.Balance), wallet.Balance.String())
			assert.True(t, decimal.RequireFromString(tt.expectedLifetime).Equal(wallet.TotalLifetimeRewards))
			assert.Len(t, wallet.Entries, tt.expectedEntries)

			balance, lifetime := wallet.Replay()
			assert.True(t, balance.Equal(wallet.Balance))
			assert.True(t, lifetime.Equal(wallet.TotalLifetimeRewards))
		})
	}
}

func TestWalletStore_EnsureWalletIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := NewWalletStore()

	require.NoError(t, store.EnsureWallet(ctx, "user-1"))
	_, err := store.UpdateWallet(ctx, "user-1", appendEntry(domain.RewardWindfall, "5"))
	require.NoError(t, err)
	require.NoError(t, store.EnsureWallet(ctx, "user-1"))

	wallet, err := store.FetchWallet(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(wallet.Balance))
}

func TestWalletStore_UnknownUser(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := NewWalletStore()

	_, err := store.FetchWallet(ctx, "ghost")
	assert.ErrorIs(t, err, &domain.WalletNotFoundError{})

	_, err = store.UpdateWallet(ctx, "ghost", appendEntry(domain.RewardWindfall, "1"))
	assert.ErrorIs(t, err, &domain.WalletNotFoundError{})

	entries, err := store.FetchEntries(ctx, "ghost", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWalletStore_FetchEntriesNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := NewWalletStore()
	require.NoError(t, store.EnsureWallet(ctx, "user-1"))

	for _, amount := range []string{"1", "2", "3", "4"} {
		_, err := store.UpdateWallet(ctx, "user-1", appendEntry(domain.RewardRoundup, amount))
		require.NoError(t, err)
	}

	entries, err := store.FetchEntries(ctx, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "roundup-4", entries[0].ID)
	assert.Equal(t, "roundup-3", entries[1].ID)
	assert.Equal(t, "roundup-2", entries[2].ID)
}

func TestWalletStore_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := NewWalletStore()
	require.NoError(t, store.EnsureWallet(ctx, "user-1"))
	_, err := store.UpdateWallet(ctx, "user-1", appendEntry(domain.RewardWindfall, "50"))
	require.NoError(t, err)

	const attempts = 20
	var succeeded atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := store.UpdateWallet(ctx, "user-1", func(_ context.Context, wallet domain.WalletSnapshot) (domain.RewardEntry, error) {
				amount := decimal.NewFromInt(10)
				if amount.GreaterThan(wallet.Balance) {
					return domain.RewardEntry{}, &domain.InsufficientBalanceError{Msg: "insufficient"}
				}
				return domain.RewardEntry{Amount: amount.Neg(), Kind: domain.RewardRedemption}, nil
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	wallet, err := store.FetchWallet(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int32(5), succeeded.Load())
	assert.True(t, wallet.Balance.IsZero())
	assert.Len(t, wallet.Entries, 6)
}

func TestWalletStore_ConcurrentCreditsAcrossUsers(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := NewWalletStore()
	users := []string{"user-1", "user-2", "user-3"}
	for _, user := range users {
		require.NoError(t, store.EnsureWallet(ctx, user))
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		for _, user := range users {
			wg.Add(1)
			go func(user string) {
				defer wg.Done()
				_, err := store.UpdateWallet(ctx, user, appendEntry(domain.RewardRoundup, "0.10"))
				assert.NoError(t, err)
			}(user)
		}
	}
	wg.Wait()

	for _, user := range users {
		wallet, err := store.FetchWallet(ctx, user)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(wallet.Balance), wallet.Balance.String())
		assert.Len(t, wallet.Entries, 30)
	}
}
