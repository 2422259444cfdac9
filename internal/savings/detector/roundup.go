package detector

import (
	"fmt"
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

const roundupTitle = "Spare change savings"

// DetectRoundups totals the spare change from rounding every recent purchase
// up to the next whole unit. The whole total is recommended.
func DetectRoundups(transactions []domain.Transaction, now time.Time, cfg domain.RoundupConfig) domain.RoundupResult {
	cutoff := daysBefore(now, cfg.WindowDays)

	var totalCents int64
	count := 0

	for _, t := range transactions {
		if !t.Valid() || !t.IsOutflow() || calendarDate(t.Date).Before(cutoff) {
			continue
		}

		count++
		totalCents += roundupCents(t.Amount)
	}

	if count == 0 {
		return domain.RoundupResult{}
	}

	total := decimal.New(totalCents, -2)
	if !total.GreaterThan(cfg.MinTotal) {
		return domain.RoundupResult{}
	}

	average := total.Div(decimal.NewFromInt(int64(count))).Round(2)

	return domain.RoundupResult{
		HasRoundups: true,
		Suggestion: &domain.Suggestion{
			Kind:              domain.SuggestionRoundup,
			Title:             roundupTitle,
			RecommendedAmount: total,
			Message:           fmt.Sprintf("Round up %d purchases to save $%s", count, total.StringFixed(2)),
			Evidence: domain.RoundupEvidence{
				Amount:           total,
				TransactionCount: count,
				AverageRoundup:   average,
			},
		},
	}
}

func roundupCents(amount decimal.Decimal) int64 {
	cents := amount.Mul(hundred).Round(0).IntPart() % 100
	if cents <= 0 {
		return 0
	}

	return 100 - cents
}
