package detector

import (
	"fmt"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

// CalculateWithdrawalImpact estimates how much goal progress and time a
// withdrawal costs, assuming the user keeps saving dailyVelocity per day.
func CalculateWithdrawalImpact(goal, balance, withdraw, dailyVelocity decimal.Decimal) (domain.WithdrawalImpact, error) {
	if !goal.IsPositive() {
		return domain.WithdrawalImpact{}, &domain.InvalidGoalError{Msg: "goal amount must be positive"}
	}
	if !dailyVelocity.IsPositive() {
		return domain.WithdrawalImpact{}, &domain.ValidationError{Msg: "daily savings velocity must be positive"}
	}
	if balance.IsNegative() {
		return domain.WithdrawalImpact{}, &domain.ValidationError{Msg: "current balance must not be negative"}
	}
	if withdraw.IsNegative() {
		return domain.WithdrawalImpact{}, &domain.ValidationError{Msg: "withdraw amount must not be negative"}
	}
	if withdraw.GreaterThan(balance) {
		return domain.WithdrawalImpact{}, &domain.ValidationError{Msg: "withdraw amount exceeds current balance"}
	}

	remaining := balance.Sub(withdraw)

	before := balance.Mul(hundred).Div(goal)
	after := remaining.Mul(hundred).Div(goal)
	lost := before.Sub(after)

	daysDelayed := daysToGoal(goal, remaining, dailyVelocity) - daysToGoal(goal, balance, dailyVelocity)

	return domain.WithdrawalImpact{
		ProgressBeforePct:    before.Round(2),
		ProgressAfterPct:     after.Round(2),
		ProgressLostPct:      lost.Round(2),
		EstimatedDaysDelayed: daysDelayed,
		Message: fmt.Sprintf("Withdrawing $%s will set you back %d days and reduce your progress by %s%%.",
			withdraw.StringFixed(2), daysDelayed, lost.StringFixed(1)),
	}, nil
}

// daysToGoal is zero once the balance has reached the goal.
func daysToGoal(goal, balance, dailyVelocity decimal.Decimal) int64 {
	missing := goal.Sub(balance)
	if !missing.IsPositive() {
		return 0
	}

	return missing.Div(dailyVelocity).Ceil().IntPart()
}
