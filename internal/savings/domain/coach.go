package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole
	Content string
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// FinancialContext is the summary handed to the coaching assistant.
type FinancialContext struct {
	RecentTransactions []Transaction
	CategoryTotals     []CategoryTotal
	VaultBalance       decimal.Decimal
	RewardBalance      decimal.Decimal
}

//go:generate mockgen -destination=../../../gen/mocks/savings/mock_coach.go -package=mocks . Coach

type Coach interface {
	Reply(ctx context.Context, financialContext FinancialContext, messages []ChatMessage) (string, error)
}
