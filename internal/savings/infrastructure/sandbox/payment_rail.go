package sandbox

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/morrow-app/morrow/internal/savings/domain"
)

var ErrRailUnavailable = errors.New("payment rail unavailable")

// PaymentRail simulates the stablecoin payment rail. An outage can be
// switched on to exercise the unsettled reward path.
type PaymentRail struct {
	mu      sync.Mutex
	latency time.Duration
	outage  bool
	sent    []domain.PaymentRequest
}

func NewPaymentRail(latency time.Duration) *PaymentRail {
	return &PaymentRail{latency: latency}
}

func (r *PaymentRail) SetOutage(outage bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outage = outage
}

func (r *PaymentRail) SendPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentReceipt, error) {
	if err := wait(ctx, r.latency); err != nil {
		return domain.PaymentReceipt{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outage {
		return domain.PaymentReceipt{}, ErrRailUnavailable
	}
	if req.ToAddress == "" {
		return domain.PaymentReceipt{}, errors.New("destination address is required")
	}
	if !req.Amount.IsPositive() {
		return domain.PaymentReceipt{}, errors.New("payment amount must be positive")
	}

	r.sent = append(r.sent, req)

	return domain.PaymentReceipt{
		PaymentID:       "pay_" + uuid.NewString(),
		TransactionHash: newTransactionHash(),
	}, nil
}

// Sent lists the accepted payments in order.
func (r *PaymentRail) Sent() []domain.PaymentRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	sent := make([]domain.PaymentRequest, len(r.sent))
	copy(sent, r.sent)

	return sent
}

func newTransactionHash() string {
	return "0x" + strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
