package detector

import (
	"testing"
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func spend(date string, amount string) domain.Transaction {
	return domain.Transaction{
		Date:         day(date),
		Amount:       decimal.RequireFromString(amount),
		MerchantName: "Corner Store",
		CategoryTag:  "FOOD_AND_DRINK",
	}
}

func income(date string, amount string) domain.Transaction {
	return domain.Transaction{
		Date:         day(date),
		Amount:       decimal.RequireFromString(amount).Neg(),
		MerchantName: "Acme Payroll",
		CategoryTag:  "INCOME_WAGES",
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}
