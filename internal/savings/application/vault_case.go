package application

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/morrow-app/morrow/internal/pkg/logging"
	"github.com/morrow-app/morrow/internal/savings/domain"
)

const maxVaultNameLength = 64

// VaultCase opens savings vaults at the banking provider so claims have a destination.
type VaultCase struct {
	bankingProvider domain.BankingProvider
	logger          logging.Logger
}

func NewVaultCase(bankingProvider domain.BankingProvider, logger logging.Logger) *VaultCase {
	return &VaultCase{
		bankingProvider: bankingProvider,
		logger:          logger,
	}
}

func (c *VaultCase) CreateVault(ctx context.Context, entityID, name string) (domain.Account, error) {
	name = strings.TrimSpace(name)

	if entityID == "" {
		return domain.Account{}, &domain.ValidationError{Msg: "entity id is required"}
	}
	if name == "" {
		return domain.Account{}, &domain.ValidationError{Msg: "vault name is required"}
	}
	if utf8.RuneCountInString(name) > maxVaultNameLength {
		return domain.Account{}, &domain.ValidationError{Msg: "vault name is too long"}
	}

	vault, err := c.bankingProvider.CreateVault(ctx, entityID, name)
	if err != nil {
		if errors.Is(err, &domain.EntityNotFoundError{}) {
			return domain.Account{}, err
		}

		return domain.Account{}, &domain.BankingUnavailableError{Msg: "failed to open vault", Cause: err}
	}

	c.logger.Info("vault opened", "entity_id", entityID, "account_id", vault.ID)

	return vault, nil
}
