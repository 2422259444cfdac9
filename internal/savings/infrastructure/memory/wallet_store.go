package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

// WalletStore keeps wallets in process memory. Each wallet has its own lock,
// so updates of one user are serialized while different users proceed in parallel.
type WalletStore struct {
	mu      sync.RWMutex
	wallets map[string]*lockedWallet
}

type lockedWallet struct {
	mu     sync.Mutex
	wallet domain.RewardWallet
}

func NewWalletStore() *WalletStore {
	return &WalletStore{
		wallets: make(map[string]*lockedWallet),
	}
}

func (s *WalletStore) EnsureWallet(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[userID]; ok {
		return nil
	}

	s.wallets[userID] = &lockedWallet{
		wallet: domain.RewardWallet{
			UserID:               userID,
			Balance:              decimal.Zero,
			TotalLifetimeRewards: decimal.Zero,
		},
	}

	return nil
}

func (s *WalletStore) FetchWallet(_ context.Context, userID string) (domain.RewardWallet, error) {
	lw, err := s.get(userID)
	if err != nil {
		return domain.RewardWallet{}, err
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	wallet := lw.wallet
	wallet.Entries = make([]domain.RewardEntry, len(lw.wallet.Entries))
	copy(wallet.Entries, lw.wallet.Entries)

	return wallet, nil
}

// FetchEntries returns the newest entries first. An unknown user has none.
func (s *WalletStore) FetchEntries(_ context.Context, userID string, limit int) ([]domain.RewardEntry, error) {
	lw, err := s.get(userID)
	if err != nil {
		return []domain.RewardEntry{}, nil
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	entries := lw.wallet.Entries
	result := make([]domain.RewardEntry, 0, min(limit, len(entries)))
	for i := len(entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, entries[i])
	}

	return result, nil
}

func (s *WalletStore) SetPayoutAddress(_ context.Context, userID string, address string) error {
	lw, err := s.get(userID)
	if err != nil {
		return err
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.wallet.PayoutAddress = address

	return nil
}

func (s *WalletStore) UpdateWallet(ctx context.Context, userID string, fn domain.WalletUpdateFn) (domain.RewardEntry, error) {
	lw, err := s.get(userID)
	if err != nil {
		return domain.RewardEntry{}, err
	}

	lw.mu.Lock()
	defer lw.mu.Unlock()

	snapshot := domain.WalletSnapshot{
		UserID:               lw.wallet.UserID,
		Balance:              lw.wallet.Balance,
		TotalLifetimeRewards: lw.wallet.TotalLifetimeRewards,
		PayoutAddress:        lw.wallet.PayoutAddress,
	}

	entry, err := fn(ctx, snapshot)
	if err != nil {
		return domain.RewardEntry{}, err
	}

	next, err := domain.ApplyEntry(snapshot, entry)
	if err != nil {
		return domain.RewardEntry{}, err
	}

	lw.wallet.Balance = next.Balance
	lw.wallet.TotalLifetimeRewards = next.TotalLifetimeRewards
	lw.wallet.Entries = append(lw.wallet.Entries, entry)

	return entry, nil
}

func (s *WalletStore) get(userID string) (*lockedWallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lw, ok := s.wallets[userID]
	if !ok {
		return nil, &domain.WalletNotFoundError{Msg: fmt.Sprintf("wallet of user %s not found", userID)}
	}

	return lw, nil
}
