package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/morrow-app/morrow/internal/pkg/database"
	"github.com/morrow-app/morrow/internal/savings/domain"
)

// TransactionsRepository serves the transactions pulled from the bank
// aggregator and stored by SyncTransactions.
type TransactionsRepository struct {
	querier   database.Querier
	txManager database.TxManager
}

func NewTransactionsRepository(querier database.Querier, txManager database.TxManager) *TransactionsRepository {
	return &TransactionsRepository{
		querier:   querier,
		txManager: txManager,
	}
}

func (r *TransactionsRepository) GetTransactions(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	getTransactionsSQL := `SELECT transaction_id, date, amount, merchant_name, category_tag
		FROM synced_transactions
		WHERE user_id = $1 AND date >= $2::date AND date <= $3::date
		ORDER BY date, transaction_id`

	rows, err := r.querier.Query(ctx, getTransactionsSQL, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction

		err = rows.Scan(&t.ID, &t.Date, &t.Amount, &t.MerchantName, &t.CategoryTag)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return transactions, nil
}

// SaveTransactions inserts the transactions not stored yet and reports how many were new.
func (r *TransactionsRepository) SaveTransactions(ctx context.Context, userID string, transactions []domain.Transaction) (int, error) {
	insertTransactionSQL := `INSERT INTO synced_transactions
		(user_id, transaction_id, date, amount, merchant_name, category_tag)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, transaction_id) DO NOTHING`

	saved := 0
	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		for _, t := range transactions {
			tag, err := executor.Exec(ctx, insertTransactionSQL,
				userID, t.ID, t.Date, t.Amount, t.MerchantName, t.CategoryTag)
			if err != nil {
				return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
			}

			saved += int(tag.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return saved, nil
}
