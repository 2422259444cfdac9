package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SuggestionKind string

const (
	SuggestionWindfall SuggestionKind = "windfall"
	SuggestionSweep    SuggestionKind = "sweep"
	SuggestionRoundup  SuggestionKind = "roundup"
)

// RewardKind maps the suggestion to the reward it earns once claimed.
func (k SuggestionKind) RewardKind() (RewardKind, bool) {
	switch k {
	case SuggestionWindfall:
		return RewardWindfall, true
	case SuggestionSweep:
		return RewardSweep, true
	case SuggestionRoundup:
		return RewardRoundup, true
	default:
		return "", false
	}
}

// Suggestion is an actionable savings proposal. Evidence always matches Kind.
type Suggestion struct {
	Kind              SuggestionKind
	Title             string
	RecommendedAmount decimal.Decimal
	Message           string
	Evidence          Evidence
}

// Evidence is implemented only by the payload types of this package.
type Evidence interface {
	evidenceKind() SuggestionKind
}

type WindfallEvidence struct {
	Amount         decimal.Decimal
	MerchantName   string
	Date           time.Time
	BaselineIncome decimal.Decimal
}

func (WindfallEvidence) evidenceKind() SuggestionKind { return SuggestionWindfall }

type SweepEvidence struct {
	UnspentBudget decimal.Decimal
	WeeklyAverage decimal.Decimal
	ThisWeekSpend decimal.Decimal
}

func (SweepEvidence) evidenceKind() SuggestionKind { return SuggestionSweep }

type RoundupEvidence struct {
	Amount           decimal.Decimal
	TransactionCount int
	AverageRoundup   decimal.Decimal
}

func (RoundupEvidence) evidenceKind() SuggestionKind { return SuggestionRoundup }

// EvidenceKind exposes the discriminator of an evidence payload.
func EvidenceKind(e Evidence) SuggestionKind {
	if e == nil {
		return ""
	}

	return e.evidenceKind()
}

type WindfallResult struct {
	HasWindfall bool
	Suggestion  *Suggestion
}

type SweepResult struct {
	HasSweep   bool
	Suggestion *Suggestion
}

type RoundupResult struct {
	HasRoundups bool
	Suggestion  *Suggestion
}

type LandmarkKind string

const (
	LandmarkNewYear    LandmarkKind = "new_year"
	LandmarkMonthStart LandmarkKind = "month_start"
	LandmarkMonday     LandmarkKind = "monday"
)

type Landmark struct {
	Kind              LandmarkKind
	Name              string
	Message           string
	SuggestedIncrease decimal.Decimal
}

type Opportunities struct {
	Windfall         *Suggestion
	Sweep            *Suggestion
	Roundup          *Suggestion
	Landmark         *Landmark
	HasOpportunities bool
}

type WithdrawalImpact struct {
	ProgressBeforePct    decimal.Decimal
	ProgressAfterPct     decimal.Decimal
	ProgressLostPct      decimal.Decimal
	EstimatedDaysDelayed int64
	Message              string
}
