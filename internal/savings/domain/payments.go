package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	FromAddress string
	ToAddress   string
	Amount      decimal.Decimal
	Currency    string
	Memo        string
}

type PaymentReceipt struct {
	PaymentID       string
	TransactionHash string
}

//go:generate mockgen -destination=../../../gen/mocks/savings/mock_payments.go -package=mocks . PaymentRail

type PaymentRail interface {
	SendPayment(ctx context.Context, req PaymentRequest) (PaymentReceipt, error)
}
