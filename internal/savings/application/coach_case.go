package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	coachRecentTransactions = 20
	coachWindowDays         = 30
	uncategorized           = "UNCATEGORIZED"
)

type CoachCase struct {
	transactionSource domain.TransactionSource
	bankingProvider   domain.BankingProvider
	walletGetter      domain.WalletGetter
	coach             domain.Coach
	logger            logging.Logger

	now func() time.Time
}

func NewCoachCase(
	transactionSource domain.TransactionSource,
	bankingProvider domain.BankingProvider,
	walletGetter domain.WalletGetter,
	coach domain.Coach,
	logger logging.Logger,
) *CoachCase {
	return &CoachCase{
		transactionSource: transactionSource,
		bankingProvider:   bankingProvider,
		walletGetter:      walletGetter,
		coach:             coach,
		logger:            logger,
		now:               time.Now,
	}
}

// BuildContext gathers what the coach needs to know about the user. The
// entity id is optional; without it the vault balance stays zero.
func (c *CoachCase) BuildContext(ctx context.Context, userID, entityID string, now time.Time) (domain.FinancialContext, error) {
	var (
		financial    domain.FinancialContext
		transactions []domain.Transaction
	)
	financial.VaultBalance = decimal.Zero
	financial.RewardBalance = decimal.Zero

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = c.transactionSource.GetTransactions(gCtx, userID, now.AddDate(0, 0, -coachWindowDays), now)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})

	if entityID != "" {
		g.Go(func() error {
			accounts, err := c.bankingProvider.GetAccountsByEntity(gCtx, entityID)
			if err != nil {
				return fmt.Errorf("failed to load accounts: %w", err)
			}

			var vaultCents int64
			for _, account := range accounts {
				if !account.IsMain {
					vaultCents += account.BalanceCents
				}
			}
			financial.VaultBalance = decimal.New(vaultCents, -2)

			return nil
		})
	}

	g.Go(func() error {
		wallet, err := c.walletGetter.GetWallet(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load reward wallet: %w", err)
		}
		financial.RewardBalance = wallet.Balance
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.FinancialContext{}, err
	}

	financial.RecentTransactions = newestFirst(transactions, coachRecentTransactions)
	financial.CategoryTotals = spendByCategory(transactions)

	return financial, nil
}

func (c *CoachCase) Chat(ctx context.Context, userID, entityID string, messages []domain.ChatMessage) (string, error) {
	if userID == "" {
		return "", &domain.ValidationError{Msg: "user id is required"}
	}
	if len(messages) == 0 {
		return "", &domain.ValidationError{Msg: "at least one message is required"}
	}

	last := messages[len(messages)-1]
	if last.Role != domain.ChatRoleUser || strings.TrimSpace(last.Content) == "" {
		return "", &domain.ValidationError{Msg: "last message must be a non-empty user message"}
	}

	financial, err := c.BuildContext(ctx, userID, entityID, c.now())
	if err != nil {
		return "", err
	}

	reply, err := c.coach.Reply(ctx, financial, messages)
	if err != nil {
		c.logger.Error("coach failed to reply", "user_id", userID, "error", err)
		return "", fmt.Errorf("failed to get coach reply: %w", err)
	}

	return reply, nil
}

func newestFirst(transactions []domain.Transaction, limit int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// spendByCategory sums outflows per category, largest first.
func spendByCategory(transactions []domain.Transaction) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.Valid() || !t.IsOutflow() {
			continue
		}

		category := t.CategoryTag
		if category == "" {
			category = uncategorized
		}
		totals[category] = totals[category].Add(t.Amount)
	}

	result := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, domain.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total.Equal(result[j].Total) {
			return result[i].Category < result[j].Category
		}
		return result[i].Total.GreaterThan(result[j].Total)
	})

	return result
}
