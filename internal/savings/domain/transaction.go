package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const incomeCategoryMarker = "INCOME"

// Transaction is a normalized bank transaction. A positive Amount is money
// leaving the account (spend), a negative Amount is money coming in.
type Transaction struct {
	ID           string
	Date         time.Time
	Amount       decimal.Decimal
	MerchantName string
	CategoryTag  string
}

func (t Transaction) IsOutflow() bool {
	return t.Amount.IsPositive()
}

func (t Transaction) IsInflow() bool {
	return t.Amount.IsNegative()
}

func (t Transaction) IsIncome() bool {
	return t.IsInflow() && strings.Contains(strings.ToUpper(t.CategoryTag), incomeCategoryMarker)
}

// Valid reports whether the record carries enough data to be analyzed.
func (t Transaction) Valid() bool {
	return !t.Date.IsZero() && !t.Amount.IsZero()
}

//go:generate mockgen -destination=../../../gen/mocks/savings/mock_transactions.go -package=mocks . TransactionSource

type TransactionSource interface {
	GetTransactions(ctx context.Context, userID string, start, end time.Time) ([]Transaction, error)
	SaveTransactions(ctx context.Context, userID string, transactions []Transaction) (int, error)
}
