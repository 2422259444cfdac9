package grpc

import (
	"fmt"
	"time"

	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dateLayout = time.DateOnly

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s is not a decimal number", field))
	}

	return amount, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toDomainTransaction(t *savingsapi.Transaction) (domain.Transaction, error) {
	if t == nil {
		return domain.Transaction{}, status.Error(codes.InvalidArgument, "transaction is empty")
	}

	date, err := time.Parse(dateLayout, t.Date)
	if err != nil {
		return domain.Transaction{}, status.Error(codes.InvalidArgument, fmt.Sprintf("transaction %s has an invalid date", t.ID))
	}

	amount, err := parseAmount("amount", t.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		ID:           t.ID,
		Date:         date,
		Amount:       amount,
		MerchantName: t.MerchantName,
		CategoryTag:  t.CategoryTag,
	}, nil
}

func toDomainMessages(messages []*savingsapi.ChatMessage) []domain.ChatMessage {
	converted := make([]domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		converted = append(converted, domain.ChatMessage{
			Role:    domain.ChatRole(m.Role),
			Content: m.Content,
		})
	}

	return converted
}

func toAPISuggestion(s *domain.Suggestion) *savingsapi.Suggestion {
	if s == nil {
		return nil
	}

	converted := &savingsapi.Suggestion{
		Kind:              string(s.Kind),
		Title:             s.Title,
		RecommendedAmount: money(s.RecommendedAmount),
		Message:           s.Message,
	}

	switch evidence := s.Evidence.(type) {
	case domain.WindfallEvidence:
		converted.Windfall = &savingsapi.WindfallEvidence{
			Amount:         money(evidence.Amount),
			MerchantName:   evidence.MerchantName,
			Date:           evidence.Date.Format(dateLayout),
			BaselineIncome: money(evidence.BaselineIncome),
		}
	case domain.SweepEvidence:
		converted.Sweep = &savingsapi.SweepEvidence{
			UnspentBudget: money(evidence.UnspentBudget),
			WeeklyAverage: money(evidence.WeeklyAverage),
			ThisWeekSpend: money(evidence.ThisWeekSpend),
		}
	case domain.RoundupEvidence:
		converted.Roundup = &savingsapi.RoundupEvidence{
			Amount:           money(evidence.Amount),
			TransactionCount: int32(evidence.TransactionCount),
			AverageRoundup:   money(evidence.AverageRoundup),
		}
	}

	return converted
}

func toAPILandmark(l *domain.Landmark) *savingsapi.Landmark {
	if l == nil {
		return nil
	}

	return &savingsapi.Landmark{
		Kind:              string(l.Kind),
		Name:              l.Name,
		Message:           l.Message,
		SuggestedIncrease: l.SuggestedIncrease.String(),
	}
}

func toAPIEntry(e domain.RewardEntry) *savingsapi.RewardEntry {
	converted := &savingsapi.RewardEntry{
		ID:              e.ID,
		Amount:          money(e.Amount),
		Currency:        e.Currency,
		Kind:            string(e.Kind),
		Description:     e.Description,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
		Settled:         e.Settlement.Settled,
		PaymentID:       e.Settlement.PaymentID,
		TransactionHash: e.Settlement.TransactionHash,
		RedemptionCode:  e.RedemptionCode,
	}
	if e.RelatedSavingsAmount != nil {
		converted.RelatedSavingsAmount = money(*e.RelatedSavingsAmount)
	}

	return converted
}

func toAPIEntries(entries []domain.RewardEntry) []*savingsapi.RewardEntry {
	converted := make([]*savingsapi.RewardEntry, 0, len(entries))
	for _, e := range entries {
		converted = append(converted, toAPIEntry(e))
	}

	return converted
}

func toAPIAccount(a domain.Account) *savingsapi.Account {
	return &savingsapi.Account{
		ID:       a.ID,
		EntityID: a.EntityID,
		Name:     a.Name,
		Balance:  money(decimal.New(a.BalanceCents, -2)),
		IsMain:   a.IsMain,
	}
}

func toAPIWallet(w domain.RewardWallet) *savingsapi.Wallet {
	return &savingsapi.Wallet{
		UserID:               w.UserID,
		Balance:              money(w.Balance),
		TotalLifetimeRewards: money(w.TotalLifetimeRewards),
		PayoutAddress:        w.PayoutAddress,
		Entries:              toAPIEntries(w.Entries),
	}
}

func toAPICatalog(c domain.Catalog) *savingsapi.GetCatalogResponse {
	resp := &savingsapi.GetCatalogResponse{
		GiftCards: make([]*savingsapi.GiftCard, 0, len(c.GiftCards)),
		Charities: make([]*savingsapi.Charity, 0, len(c.Charities)),
	}

	for _, card := range c.GiftCards {
		denominations := make([]string, 0, len(card.Denominations))
		for _, d := range card.Denominations {
			denominations = append(denominations, money(d))
		}
		resp.GiftCards = append(resp.GiftCards, &savingsapi.GiftCard{
			ID:            card.ID,
			Brand:         card.Brand,
			Denominations: denominations,
		})
	}

	for _, charity := range c.Charities {
		resp.Charities = append(resp.Charities, &savingsapi.Charity{
			ID:            charity.ID,
			Name:          charity.Name,
			WalletAddress: charity.WalletAddress,
			Description:   charity.Description,
		})
	}

	return resp
}
