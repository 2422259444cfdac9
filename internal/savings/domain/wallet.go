package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const RewardCurrency = "USDC"

type RewardKind string

const (
	RewardWindfall    RewardKind = "windfall"
	RewardSweep       RewardKind = "sweep"
	RewardRoundup     RewardKind = "roundup"
	RewardStreakBonus RewardKind = "streak_bonus"
	RewardRedemption  RewardKind = "redemption"
	RewardDonation    RewardKind = "donation"
)

// IsCredit reports whether entries of this kind add to the lifetime total.
func (k RewardKind) IsCredit() bool {
	switch k {
	case RewardWindfall, RewardSweep, RewardRoundup, RewardStreakBonus:
		return true
	default:
		return false
	}
}

func (k RewardKind) IsDebit() bool {
	return k == RewardRedemption || k == RewardDonation
}

func (k RewardKind) Valid() bool {
	return k.IsCredit() || k.IsDebit()
}

// Settlement records whether an entry moved real funds on the payment rail.
type Settlement struct {
	Settled         bool
	PaymentID       string
	TransactionHash string
}

func Unsettled() Settlement {
	return Settlement{}
}

func SettledBy(paymentID, transactionHash string) Settlement {
	return Settlement{
		Settled:         true,
		PaymentID:       paymentID,
		TransactionHash: transactionHash,
	}
}

// RewardEntry is immutable once appended to a wallet.
type RewardEntry struct {
	ID                   string
	UserID               string
	Amount               decimal.Decimal
	Currency             string
	Kind                 RewardKind
	Description          string
	CreatedAt            time.Time
	Settlement           Settlement
	RelatedSavingsAmount *decimal.Decimal
	RedemptionCode       string
}

// ExternalReference is the on-chain transaction hash, empty for unsettled entries.
func (e RewardEntry) ExternalReference() string {
	return e.Settlement.TransactionHash
}

type RewardWallet struct {
	UserID               string
	Balance              decimal.Decimal
	TotalLifetimeRewards decimal.Decimal
	PayoutAddress        string
	Entries              []RewardEntry
}

// Replay rebuilds balance and lifetime total from the entries alone.
func (w RewardWallet) Replay() (balance decimal.Decimal, lifetime decimal.Decimal) {
	balance = decimal.Zero
	lifetime = decimal.Zero

	for _, entry := range w.Entries {
		balance = balance.Add(entry.Amount)
		if entry.Kind.IsCredit() {
			lifetime = lifetime.Add(entry.Amount)
		}
	}

	return balance, lifetime
}

// WalletSnapshot is the state handed to a WalletUpdateFn under the user's lock.
type WalletSnapshot struct {
	UserID               string
	Balance              decimal.Decimal
	TotalLifetimeRewards decimal.Decimal
	PayoutAddress        string
}

// WalletUpdateFn decides, from the locked snapshot, which entry to append.
// Returning an error aborts the update and leaves the wallet unchanged.
type WalletUpdateFn func(ctx context.Context, wallet WalletSnapshot) (RewardEntry, error)

//go:generate mockgen -destination=../../../gen/mocks/savings/mock_wallets.go -package=mocks . WalletStore,WalletEnsurer,RewardCreditor,WalletGetter

// WalletEnsurer creates an empty wallet for the user unless one exists.
type WalletEnsurer interface {
	EnsureWallet(ctx context.Context, userID string) error
}

type WalletStore interface {
	WalletEnsurer
	FetchWallet(ctx context.Context, userID string) (RewardWallet, error)
	FetchEntries(ctx context.Context, userID string, limit int) ([]RewardEntry, error)
	SetPayoutAddress(ctx context.Context, userID string, address string) error
	// UpdateWallet serializes against every other update of the same user and
	// appends the entry returned by fn, adjusting balance and lifetime total.
	UpdateWallet(ctx context.Context, userID string, fn WalletUpdateFn) (RewardEntry, error)
}

type RewardCreditor interface {
	CreditReward(ctx context.Context, userID string, savingsAmount decimal.Decimal, kind RewardKind, description string) (RewardEntry, error)
}

type WalletGetter interface {
	GetWallet(ctx context.Context, userID string) (RewardWallet, error)
}

// ApplyEntry returns the snapshot after entry is appended.
func ApplyEntry(wallet WalletSnapshot, entry RewardEntry) (WalletSnapshot, error) {
	next := wallet
	next.Balance = wallet.Balance.Add(entry.Amount)
	if next.Balance.IsNegative() {
		return WalletSnapshot{}, &InsufficientBalanceError{Msg: "insufficient reward balance"}
	}

	if entry.Kind.IsCredit() {
		next.TotalLifetimeRewards = wallet.TotalLifetimeRewards.Add(entry.Amount)
	}

	return next, nil
}
