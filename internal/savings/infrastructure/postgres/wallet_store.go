package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/morrow-app/morrow/internal/pkg/database"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

const entryColumns = `id, user_id, amount, currency, kind, description, created_at,
	settled, payment_id, transaction_hash, related_savings_amount, redemption_code`

type WalletStore struct {
	queryExecuter database.QueryExecuter
	txManager     database.TxManager
}

func NewWalletStore(queryExecuter database.QueryExecuter, txManager database.TxManager) *WalletStore {
	return &WalletStore{
		queryExecuter: queryExecuter,
		txManager:     txManager,
	}
}

func (s *WalletStore) EnsureWallet(ctx context.Context, userID string) error {
	ensureWalletSQL := `INSERT INTO wallets (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`

	_, err := s.queryExecuter.Exec(ctx, ensureWalletSQL, userID)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return nil
}

func (s *WalletStore) FetchWallet(ctx context.Context, userID string) (domain.RewardWallet, error) {
	getWalletSQL := `SELECT balance, total_lifetime_rewards, payout_address FROM wallets WHERE user_id = $1`

	wallet := domain.RewardWallet{UserID: userID}
	err := s.queryExecuter.QueryRow(ctx, getWalletSQL, userID).
		Scan(&wallet.Balance, &wallet.TotalLifetimeRewards, &wallet.PayoutAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RewardWallet{}, &domain.WalletNotFoundError{Msg: fmt.Sprintf("wallet of user %s not found", userID)}
		}

		return domain.RewardWallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}

	getEntriesSQL := `SELECT ` + entryColumns + ` FROM reward_entries WHERE user_id = $1 ORDER BY seq`

	rows, err := s.queryExecuter.Query(ctx, getEntriesSQL, userID)
	if err != nil {
		return domain.RewardWallet{}, fmt.Errorf("failed to get reward entries: %w", err)
	}

	wallet.Entries, err = scanEntries(rows)
	if err != nil {
		return domain.RewardWallet{}, err
	}

	return wallet, nil
}

func (s *WalletStore) FetchEntries(ctx context.Context, userID string, limit int) ([]domain.RewardEntry, error) {
	getEntriesSQL := `SELECT ` + entryColumns + ` FROM reward_entries WHERE user_id = $1 ORDER BY seq DESC LIMIT $2`

	rows, err := s.queryExecuter.Query(ctx, getEntriesSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get reward entries: %w", err)
	}

	return scanEntries(rows)
}

func (s *WalletStore) SetPayoutAddress(ctx context.Context, userID string, address string) error {
	setAddressSQL := `UPDATE wallets SET payout_address = $2 WHERE user_id = $1`

	tag, err := s.queryExecuter.Exec(ctx, setAddressSQL, userID, address)
	if err != nil {
		return fmt.Errorf("failed to set payout address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.WalletNotFoundError{Msg: fmt.Sprintf("wallet of user %s not found", userID)}
	}

	return nil
}

// UpdateWallet locks the wallet row for the rest of the transaction, so
// concurrent updates of the same user queue up behind each other.
func (s *WalletStore) UpdateWallet(ctx context.Context, userID string, fn domain.WalletUpdateFn) (domain.RewardEntry, error) {
	var entry domain.RewardEntry

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		snapshot, err := LockWallet(ctx, executor, userID)
		if err != nil {
			return err
		}

		entry, err = fn(ctx, snapshot)
		if err != nil {
			return err
		}

		next, err := domain.ApplyEntry(snapshot, entry)
		if err != nil {
			return err
		}

		err = InsertEntry(ctx, executor, userID, entry)
		if err != nil {
			return err
		}

		updateWalletSQL := `UPDATE wallets SET balance = $2, total_lifetime_rewards = $3 WHERE user_id = $1`
		_, err = executor.Exec(ctx, updateWalletSQL, userID, next.Balance, next.TotalLifetimeRewards)
		if err != nil {
			return fmt.Errorf("failed to update wallet balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.RewardEntry{}, err
	}

	return entry, nil
}

func LockWallet(ctx context.Context, querier database.Querier, userID string) (domain.WalletSnapshot, error) {
	lockWalletSQL := `SELECT balance, total_lifetime_rewards, payout_address FROM wallets WHERE user_id = $1 FOR UPDATE`

	snapshot := domain.WalletSnapshot{UserID: userID}
	err := querier.QueryRow(ctx, lockWalletSQL, userID).
		Scan(&snapshot.Balance, &snapshot.TotalLifetimeRewards, &snapshot.PayoutAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WalletSnapshot{}, &domain.WalletNotFoundError{Msg: fmt.Sprintf("wallet of user %s not found", userID)}
		}

		return domain.WalletSnapshot{}, fmt.Errorf("failed to lock wallet row: %w", err)
	}

	return snapshot, nil
}

func InsertEntry(ctx context.Context, executor database.Executor, userID string, entry domain.RewardEntry) error {
	insertEntrySQL := `INSERT INTO reward_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	related := decimal.NullDecimal{}
	if entry.RelatedSavingsAmount != nil {
		related = decimal.NewNullDecimal(*entry.RelatedSavingsAmount)
	}

	_, err := executor.Exec(ctx, insertEntrySQL,
		entry.ID,
		userID,
		entry.Amount,
		entry.Currency,
		string(entry.Kind),
		entry.Description,
		entry.CreatedAt,
		entry.Settlement.Settled,
		entry.Settlement.PaymentID,
		entry.Settlement.TransactionHash,
		related,
		entry.RedemptionCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reward entry: %w", err)
	}

	return nil
}

func scanEntries(rows pgx.Rows) ([]domain.RewardEntry, error) {
	defer rows.Close()

	entries := make([]domain.RewardEntry, 0)
	for rows.Next() {
		var (
			entry   domain.RewardEntry
			kind    string
			related decimal.NullDecimal
		)

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Amount,
			&entry.Currency,
			&kind,
			&entry.Description,
			&entry.CreatedAt,
			&entry.Settlement.Settled,
			&entry.Settlement.PaymentID,
			&entry.Settlement.TransactionHash,
			&related,
			&entry.RedemptionCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward entry: %w", err)
		}

		entry.Kind = domain.RewardKind(kind)
		if related.Valid {
			amount := related.Decimal
			entry.RelatedSavingsAmount = &amount
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reward entries: %w", err)
	}

	return entries, nil
}
