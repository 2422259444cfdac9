package application

import (
	"context"
	"fmt"
	"time"

	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/detector"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const analysisWindowDays = 90

type AnalysisCase struct {
	transactionSource domain.TransactionSource
	cfg               domain.DetectionConfig
	logger            logging.Logger
}

func NewAnalysisCase(transactionSource domain.TransactionSource, cfg domain.DetectionConfig, logger logging.Logger) *AnalysisCase {
	return &AnalysisCase{
		transactionSource: transactionSource,
		cfg:               cfg,
		logger:            logger,
	}
}

// Analyze runs every detector over the user's recent history.
func (a *AnalysisCase) Analyze(ctx context.Context, userID string, now time.Time) (domain.Opportunities, error) {
	if userID == "" {
		return domain.Opportunities{}, &domain.ValidationError{Msg: "user id is required"}
	}

	transactions, err := a.transactionSource.GetTransactions(ctx, userID, now.AddDate(0, 0, -analysisWindowDays), now)
	if err != nil {
		return domain.Opportunities{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	var (
		windfall domain.WindfallResult
		sweep    domain.SweepResult
		roundup  domain.RoundupResult
	)

	var g errgroup.Group
	g.Go(func() error {
		windfall = detector.DetectWindfall(transactions, now, a.cfg.Windfall)
		return nil
	})
	g.Go(func() error {
		sweep = detector.DetectSweep(transactions, now, a.cfg.Sweep)
		return nil
	})
	g.Go(func() error {
		roundup = detector.DetectRoundups(transactions, now, a.cfg.Roundup)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Opportunities{}, err
	}

	opportunities := domain.Opportunities{
		Windfall: windfall.Suggestion,
		Sweep:    sweep.Suggestion,
		Roundup:  roundup.Suggestion,
	}

	if landmark, ok := detector.DetectLandmark(now); ok {
		opportunities.Landmark = &landmark
	}

	opportunities.HasOpportunities = windfall.HasWindfall || sweep.HasSweep || roundup.HasRoundups

	a.logger.Info("analyzed transactions", "user_id", userID, "transactions", len(transactions),
		"has_opportunities", opportunities.HasOpportunities)

	return opportunities, nil
}

func (a *AnalysisCase) FreshStart(now time.Time) (domain.Landmark, bool) {
	return detector.DetectLandmark(now)
}

func (a *AnalysisCase) WithdrawalImpact(goal, balance, withdraw decimal.Decimal) (domain.WithdrawalImpact, error) {
	return detector.CalculateWithdrawalImpact(goal, balance, withdraw, a.cfg.DailySavingsVelocity)
}

// SyncTransactions stores transactions pulled from the aggregator. Records
// already stored under the same id are left untouched.
func (a *AnalysisCase) SyncTransactions(ctx context.Context, userID string, transactions []domain.Transaction) (int, error) {
	if userID == "" {
		return 0, &domain.ValidationError{Msg: "user id is required"}
	}

	for i, t := range transactions {
		if t.ID == "" {
			return 0, &domain.ValidationError{Msg: fmt.Sprintf("transaction %d has no id", i)}
		}
		if !t.Valid() {
			return 0, &domain.ValidationError{Msg: fmt.Sprintf("transaction %s has no date or amount", t.ID)}
		}
	}

	if len(transactions) == 0 {
		return 0, nil
	}

	saved, err := a.transactionSource.SaveTransactions(ctx, userID, transactions)
	if err != nil {
		return 0, fmt.Errorf("failed to save transactions: %w", err)
	}

	a.logger.Info("synced transactions", "user_id", userID, "received", len(transactions), "saved", saved)

	return saved, nil
}
