package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

// RewardLedger keeps the per-user reward wallets. Every balance-changing
// operation goes through WalletStore.UpdateWallet, so two updates of the same
// user never interleave.
type RewardLedger struct {
	walletStore domain.WalletStore
	paymentRail domain.PaymentRail
	catalog     domain.Catalog
	cfg         domain.RewardConfig
	logger      logging.Logger

	now func() time.Time
}

func NewRewardLedger(
	walletStore domain.WalletStore,
	paymentRail domain.PaymentRail,
	catalog domain.Catalog,
	cfg domain.RewardConfig,
	logger logging.Logger,
) *RewardLedger {
	return &RewardLedger{
		walletStore: walletStore,
		paymentRail: paymentRail,
		catalog:     catalog,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (l *RewardLedger) GetWallet(ctx context.Context, userID string) (domain.RewardWallet, error) {
	if userID == "" {
		return domain.RewardWallet{}, &domain.ValidationError{Msg: "user id is required"}
	}

	err := l.walletStore.EnsureWallet(ctx, userID)
	if err != nil {
		return domain.RewardWallet{}, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	wallet, err := l.walletStore.FetchWallet(ctx, userID)
	if err != nil {
		return domain.RewardWallet{}, fmt.Errorf("failed to fetch wallet: %w", err)
	}

	return wallet, nil
}

// CreditReward converts a completed savings action into a reward. A failed
// settlement does not fail the credit: the entry is recorded as unsettled.
func (l *RewardLedger) CreditReward(
	ctx context.Context,
	userID string,
	savingsAmount decimal.Decimal,
	kind domain.RewardKind,
	description string,
) (domain.RewardEntry, error) {
	if userID == "" {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "user id is required"}
	}
	if !savingsAmount.IsPositive() {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "savings amount must be positive"}
	}

	multiplier, ok := l.cfg.Multiplier(kind)
	if !ok {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: fmt.Sprintf("kind %s does not earn rewards", kind)}
	}

	reward := savingsAmount.Mul(multiplier).Round(2)
	related := savingsAmount

	return l.credit(ctx, userID, reward, kind, description, &related)
}

// CreditStreakBonus pays the fixed bonus configured for a streak length.
func (l *RewardLedger) CreditStreakBonus(ctx context.Context, userID string, streakWeeks int) (domain.RewardEntry, error) {
	if userID == "" {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "user id is required"}
	}

	bonus, ok := l.cfg.StreakBonuses[streakWeeks]
	if !ok {
		return domain.RewardEntry{}, &domain.StreakNotEligibleError{
			Msg: fmt.Sprintf("no bonus for a %d-week streak", streakWeeks),
		}
	}

	return l.credit(ctx, userID, bonus, domain.RewardStreakBonus, fmt.Sprintf("%d-week savings streak bonus", streakWeeks), nil)
}

func (l *RewardLedger) credit(
	ctx context.Context,
	userID string,
	reward decimal.Decimal,
	kind domain.RewardKind,
	description string,
	related *decimal.Decimal,
) (domain.RewardEntry, error) {
	wallet, err := l.GetWallet(ctx, userID)
	if err != nil {
		return domain.RewardEntry{}, err
	}

	settlement := l.settle(ctx, userID, wallet.PayoutAddress, reward, description)

	entry := domain.RewardEntry{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Amount:               reward,
		Currency:             domain.RewardCurrency,
		Kind:                 kind,
		Description:          description,
		CreatedAt:            l.now().UTC(),
		Settlement:           settlement,
		RelatedSavingsAmount: related,
	}

	recorded, err := l.walletStore.UpdateWallet(ctx, userID, func(ctx context.Context, _ domain.WalletSnapshot) (domain.RewardEntry, error) {
		return entry, nil
	})
	if err != nil {
		return domain.RewardEntry{}, fmt.Errorf("failed to record reward: %w", err)
	}

	return recorded, nil
}

// settle pays the reward out on the payment rail. Failures are logged and
// reported as an unsettled result.
func (l *RewardLedger) settle(ctx context.Context, userID, payoutAddress string, amount decimal.Decimal, memo string) domain.Settlement {
	if !amount.IsPositive() {
		return domain.Unsettled()
	}
	if payoutAddress == "" {
		l.logger.Warn("reward left unsettled: no payout address", "user_id", userID, "amount", amount.String())
		return domain.Unsettled()
	}

	receipt, err := l.paymentRail.SendPayment(ctx, domain.PaymentRequest{
		FromAddress: l.cfg.TreasuryAddress,
		ToAddress:   payoutAddress,
		Amount:      amount,
		Currency:    domain.RewardCurrency,
		Memo:        memo,
	})
	if err != nil {
		l.logger.Warn("reward left unsettled: payment rail failed", "user_id", userID, "amount", amount.String(), "error", err)
		return domain.Unsettled()
	}

	return domain.SettledBy(receipt.PaymentID, receipt.TransactionHash)
}

// Redeem spends part of the balance on a gift card.
func (l *RewardLedger) Redeem(ctx context.Context, userID, giftCardID string, amount decimal.Decimal) (domain.RewardEntry, error) {
	if userID == "" {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "user id is required"}
	}
	if !amount.IsPositive() {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "redemption amount must be positive"}
	}

	err := l.walletStore.EnsureWallet(ctx, userID)
	if err != nil {
		return domain.RewardEntry{}, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	entry, err := l.walletStore.UpdateWallet(ctx, userID, func(ctx context.Context, wallet domain.WalletSnapshot) (domain.RewardEntry, error) {
		if amount.GreaterThan(wallet.Balance) {
			return domain.RewardEntry{}, &domain.InsufficientBalanceError{
				Msg: fmt.Sprintf("balance %s is not enough to redeem %s", wallet.Balance.StringFixed(2), amount.StringFixed(2)),
			}
		}

		card, err := l.catalog.FindGiftCard(giftCardID)
		if err != nil {
			return domain.RewardEntry{}, err
		}
		if !card.AllowsAmount(amount) {
			return domain.RewardEntry{}, &domain.InvalidDenominationError{
				Msg: fmt.Sprintf("%s gift cards are not sold for %s", card.Brand, amount.StringFixed(2)),
			}
		}

		return domain.RewardEntry{
			ID:             uuid.NewString(),
			UserID:         userID,
			Amount:         amount.Neg(),
			Currency:       domain.RewardCurrency,
			Kind:           domain.RewardRedemption,
			Description:    fmt.Sprintf("Redeemed $%s %s gift card", amount.StringFixed(2), card.Brand),
			CreatedAt:      l.now().UTC(),
			Settlement:     domain.Unsettled(),
			RedemptionCode: newRedemptionCode(),
		}, nil
	})
	if err != nil {
		return domain.RewardEntry{}, err
	}

	return entry, nil
}

// Donate sends part of the balance to a charity. Unlike a credit, the
// donation only happens if the payment rail accepts it.
func (l *RewardLedger) Donate(ctx context.Context, userID, charityID string, amount decimal.Decimal) (domain.RewardEntry, error) {
	if userID == "" {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "user id is required"}
	}
	if !amount.IsPositive() {
		return domain.RewardEntry{}, &domain.ValidationError{Msg: "donation amount must be positive"}
	}

	charity, err := l.catalog.FindCharity(charityID)
	if err != nil {
		return domain.RewardEntry{}, err
	}

	err = l.walletStore.EnsureWallet(ctx, userID)
	if err != nil {
		return domain.RewardEntry{}, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	entry, err := l.walletStore.UpdateWallet(ctx, userID, func(ctx context.Context, wallet domain.WalletSnapshot) (domain.RewardEntry, error) {
		if amount.GreaterThan(wallet.Balance) {
			return domain.RewardEntry{}, &domain.InsufficientBalanceError{
				Msg: fmt.Sprintf("balance %s is not enough to donate %s", wallet.Balance.StringFixed(2), amount.StringFixed(2)),
			}
		}

		description := fmt.Sprintf("Donated $%s to %s", amount.StringFixed(2), charity.Name)

		receipt, err := l.paymentRail.SendPayment(ctx, domain.PaymentRequest{
			FromAddress: l.cfg.TreasuryAddress,
			ToAddress:   charity.WalletAddress,
			Amount:      amount,
			Currency:    domain.RewardCurrency,
			Memo:        description,
		})
		if err != nil {
			return domain.RewardEntry{}, &domain.ExternalSettlementUnavailableError{Msg: "donation payment failed", Cause: err}
		}

		return domain.RewardEntry{
			ID:          uuid.NewString(),
			UserID:      userID,
			Amount:      amount.Neg(),
			Currency:    domain.RewardCurrency,
			Kind:        domain.RewardDonation,
			Description: description,
			CreatedAt:   l.now().UTC(),
			Settlement:  domain.SettledBy(receipt.PaymentID, receipt.TransactionHash),
		}, nil
	})
	if err != nil {
		return domain.RewardEntry{}, err
	}

	return entry, nil
}

// ListTransactions returns up to limit entries, newest first.
func (l *RewardLedger) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardEntry, error) {
	if userID == "" {
		return nil, &domain.ValidationError{Msg: "user id is required"}
	}
	if limit <= 0 {
		return nil, &domain.ValidationError{Msg: "limit must be positive"}
	}

	entries, err := l.walletStore.FetchEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reward entries: %w", err)
	}

	return entries, nil
}

func (l *RewardLedger) SetPayoutAddress(ctx context.Context, userID, address string) error {
	if userID == "" {
		return &domain.ValidationError{Msg: "user id is required"}
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return &domain.ValidationError{Msg: "payout address is required"}
	}

	err := l.walletStore.EnsureWallet(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to ensure wallet: %w", err)
	}

	err = l.walletStore.SetPayoutAddress(ctx, userID, address)
	if err != nil {
		return fmt.Errorf("failed to set payout address: %w", err)
	}

	return nil
}

func (l *RewardLedger) Catalog() domain.Catalog {
	return l.catalog
}

// newRedemptionCode formats 16 random hex digits as XXXX-XXXX-XXXX-XXXX.
func newRedemptionCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
	return fmt.Sprintf("%s-%s-%s-%s", raw[0:4], raw[4:8], raw[8:12], raw[12:16])
}
