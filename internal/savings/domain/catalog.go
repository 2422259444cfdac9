package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type GiftCard struct {
	ID            string
	Brand         string
	Denominations []decimal.Decimal
}

func (g GiftCard) AllowsAmount(amount decimal.Decimal) bool {
	for _, denomination := range g.Denominations {
		if denomination.Equal(amount) {
			return true
		}
	}

	return false
}

type Charity struct {
	ID            string
	Name          string
	WalletAddress string
	Description   string
}

type Catalog struct {
	GiftCards []GiftCard
	Charities []Charity
}

func (c Catalog) FindGiftCard(id string) (GiftCard, error) {
	for _, card := range c.GiftCards {
		if card.ID == id {
			return card, nil
		}
	}

	return GiftCard{}, &GiftCardNotFoundError{Msg: fmt.Sprintf("gift card %s not found", id)}
}

func (c Catalog) FindCharity(id string) (Charity, error) {
	for _, charity := range c.Charities {
		if charity.ID == id {
			return charity, nil
		}
	}

	return Charity{}, &CharityNotFoundError{Msg: fmt.Sprintf("charity %s not found", id)}
}
