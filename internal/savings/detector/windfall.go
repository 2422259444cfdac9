package detector

import (
	"fmt"
	"sort"
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

const defaultWindfallTitle = "Income deposit"

// DetectWindfall looks for a recent income deposit that clearly exceeds the
// user's usual monthly income. Records without a date or amount are ignored.
func DetectWindfall(transactions []domain.Transaction, now time.Time, cfg domain.WindfallConfig) domain.WindfallResult {
	income := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Valid() && t.IsIncome() {
			income = append(income, t)
		}
	}

	if len(income) == 0 {
		return domain.WindfallResult{}
	}

	baseline := medianMonthlyIncome(income)
	limit := baseline.Mul(cfg.Threshold)
	cutoff := daysBefore(now, cfg.RecentDays)

	for _, t := range income {
		if calendarDate(t.Date).Before(cutoff) {
			continue
		}

		amount := t.Amount.Abs()
		if !amount.GreaterThan(limit) {
			continue
		}

		title := t.MerchantName
		if title == "" {
			title = defaultWindfallTitle
		}

		return domain.WindfallResult{
			HasWindfall: true,
			Suggestion: &domain.Suggestion{
				Kind:              domain.SuggestionWindfall,
				Title:             title,
				RecommendedAmount: amount.Mul(cfg.SavePercent).Round(0),
				Message: fmt.Sprintf("Great news! We detected a windfall of $%s. Save some before it gets mentally budgeted.",
					amount.StringFixed(2)),
				Evidence: domain.WindfallEvidence{
					Amount:         amount,
					MerchantName:   t.MerchantName,
					Date:           calendarDate(t.Date),
					BaselineIncome: baseline,
				},
			},
		}
	}

	return domain.WindfallResult{}
}

// medianMonthlyIncome sums income per calendar month and returns the median
// of those sums. With an even number of months the lower middle value wins.
func medianMonthlyIncome(income []domain.Transaction) decimal.Decimal {
	monthly := make(map[string]decimal.Decimal)
	for _, t := range income {
		month := t.Date.Format("2006-01")
		monthly[month] = monthly[month].Add(t.Amount.Abs())
	}

	sums := make([]decimal.Decimal, 0, len(monthly))
	for _, sum := range monthly {
		sums = append(sums, sum)
	}

	sort.Slice(sums, func(i, j int) bool {
		return sums[i].LessThan(sums[j])
	})

	return sums[(len(sums)-1)/2]
}
