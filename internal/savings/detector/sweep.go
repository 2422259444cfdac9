package detector

import (
	"fmt"
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

const sweepTitle = "Under budget this week"

// DetectSweep compares this week's spending with the average of the complete
// weeks before it and proposes sweeping part of the difference into savings.
func DetectSweep(transactions []domain.Transaction, now time.Time, cfg domain.SweepConfig) domain.SweepResult {
	currentWeek := weekStart(now)
	trailingStart := currentWeek.AddDate(0, 0, -7*cfg.TrailingWeeks)

	thisWeekSpend := decimal.Zero
	trailingSpend := decimal.Zero
	spendCount := 0

	for _, t := range transactions {
		if !t.Valid() || !t.IsOutflow() {
			continue
		}
		spendCount++

		day := calendarDate(t.Date)
		switch {
		case !day.Before(currentWeek):
			thisWeekSpend = thisWeekSpend.Add(t.Amount)
		case !day.Before(trailingStart):
			trailingSpend = trailingSpend.Add(t.Amount)
		}
	}

	if spendCount == 0 {
		return domain.SweepResult{}
	}

	weeklyAverage := trailingSpend.Div(decimal.NewFromInt(int64(cfg.TrailingWeeks)))
	unspent := weeklyAverage.Sub(thisWeekSpend)

	if !unspent.GreaterThan(cfg.MinSignal) {
		return domain.SweepResult{}
	}

	recommended := unspent.Mul(cfg.SavePercent).Round(0)

	return domain.SweepResult{
		HasSweep: true,
		Suggestion: &domain.Suggestion{
			Kind:              domain.SuggestionSweep,
			Title:             sweepTitle,
			RecommendedAmount: recommended,
			Message: fmt.Sprintf("You're $%s under your weekly average. Sweep $%s into savings?",
				unspent.StringFixed(2), recommended.StringFixed(0)),
			Evidence: domain.SweepEvidence{
				UnspentBudget: unspent.Round(2),
				WeeklyAverage: weeklyAverage.Round(2),
				ThisWeekSpend: thisWeekSpend.Round(2),
			},
		},
	}
}
