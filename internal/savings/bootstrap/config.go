package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/morrow-app/morrow/internal/pkg/database"
	"github.com/morrow-app/morrow/internal/pkg/env"
	"github.com/morrow-app/morrow/internal/savings/application"
	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultGeminiModel = "gemini-2.5-flash"

type SavingsConfig struct {
	DbSettings database.PostgresSettings
	GrpcPort   string

	TransferTimeout time.Duration
	GeminiAPIKey    string
	GeminiModel     string

	Detection domain.DetectionConfig
	Rewards   domain.RewardConfig
	Catalog   domain.Catalog
	Sandbox   SandboxConfig
}

// SandboxConfig seeds the in-process banking provider and payment rail.
type SandboxConfig struct {
	BankLatency time.Duration
	RailLatency time.Duration
	Accounts    []domain.Account
}

func DefaultSavingsConfig() SavingsConfig {
	return SavingsConfig{
		DbSettings: database.PostgresSettings{
			User:     "morrow",
			Password: "morrow",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "morrow",
		},
		GrpcPort:        ":9090",
		TransferTimeout: application.DefaultTransferTimeout,
		GeminiModel:     defaultGeminiModel,
		Detection:       domain.DefaultDetectionConfig(),
		Rewards:         domain.DefaultRewardConfig(),
	}
}

// LoadSavingsConfig overlays the YAML file at path, if any, on the defaults
// and then applies environment overrides.
func LoadSavingsConfig(path string) (SavingsConfig, error) {
	cfg := DefaultSavingsConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return SavingsConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err := cfg.applyYAML(raw); err != nil {
			return SavingsConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return SavingsConfig{}, err
	}

	return cfg, nil
}

func (c *SavingsConfig) applyEnv() {
	env.TrySetFromEnv(env.EnvGrpcSavingsPort, &c.GrpcPort)

	env.TrySetFromEnv(env.EnvDatabaseHost, &c.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &c.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &c.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &c.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &c.DbSettings.DBName)

	env.TrySetDurationFromEnv(env.EnvTransferTimeout, &c.TransferTimeout)
	env.TrySetFromEnv(env.EnvTreasuryAddress, &c.Rewards.TreasuryAddress)
	env.TrySetFromEnv(env.EnvGeminiAPIKey, &c.GeminiAPIKey)
	env.TrySetFromEnv(env.EnvGeminiModel, &c.GeminiModel)
}

func (c SavingsConfig) Validate() error {
	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("invalid detection config: %w", err)
	}
	if err := c.Rewards.Validate(); err != nil {
		return fmt.Errorf("invalid reward config: %w", err)
	}
	if c.TransferTimeout <= 0 {
		return errors.New("transfer timeout must be positive")
	}

	for _, card := range c.Catalog.GiftCards {
		if card.ID == "" || len(card.Denominations) == 0 {
			return fmt.Errorf("gift card %q needs an id and at least one denomination", card.Brand)
		}
	}
	for _, charity := range c.Catalog.Charities {
		if charity.ID == "" || charity.WalletAddress == "" {
			return fmt.Errorf("charity %q needs an id and a wallet address", charity.Name)
		}
	}

	return nil
}

//region YAML layout

type fileConfig struct {
	Detection detectionFile `yaml:"detection"`
	Rewards   rewardsFile   `yaml:"rewards"`
	Catalog   catalogFile   `yaml:"catalog"`
	Sandbox   sandboxFile   `yaml:"sandbox"`
}

type detectionFile struct {
	Windfall struct {
		Threshold   decimal.Decimal `yaml:"threshold"`
		SavePercent decimal.Decimal `yaml:"save_percent"`
		RecentDays  int             `yaml:"recent_days"`
	} `yaml:"windfall"`
	Sweep struct {
		MinSignal     decimal.Decimal `yaml:"min_signal"`
		SavePercent   decimal.Decimal `yaml:"save_percent"`
		TrailingWeeks int             `yaml:"trailing_weeks"`
	} `yaml:"sweep"`
	Roundup struct {
		MinTotal   decimal.Decimal `yaml:"min_total"`
		WindowDays int             `yaml:"window_days"`
	} `yaml:"roundup"`
	DailySavingsVelocity decimal.Decimal `yaml:"daily_savings_velocity"`
}

type rewardsFile struct {
	Multipliers     map[string]decimal.Decimal `yaml:"multipliers"`
	StreakBonuses   map[int]decimal.Decimal    `yaml:"streak_bonuses"`
	TreasuryAddress string                     `yaml:"treasury_address"`
}

type catalogFile struct {
	GiftCards []struct {
		ID            string            `yaml:"id"`
		Brand         string            `yaml:"brand"`
		Denominations []decimal.Decimal `yaml:"denominations"`
	} `yaml:"gift_cards"`
	Charities []struct {
		ID            string `yaml:"id"`
		Name          string `yaml:"name"`
		WalletAddress string `yaml:"wallet_address"`
		Description   string `yaml:"description"`
	} `yaml:"charities"`
}

type sandboxFile struct {
	BankLatency time.Duration `yaml:"bank_latency"`
	RailLatency time.Duration `yaml:"rail_latency"`
	Accounts    []struct {
		ID           string `yaml:"id"`
		EntityID     string `yaml:"entity_id"`
		Name         string `yaml:"name"`
		BalanceCents int64  `yaml:"balance_cents"`
		IsMain       bool   `yaml:"is_main"`
	} `yaml:"accounts"`
}

//endregion

func (c *SavingsConfig) applyYAML(raw []byte) error {
	var file fileConfig

	d := c.Detection
	file.Detection.Windfall.Threshold = d.Windfall.Threshold
	file.Detection.Windfall.SavePercent = d.Windfall.SavePercent
	file.Detection.Windfall.RecentDays = d.Windfall.RecentDays
	file.Detection.Sweep.MinSignal = d.Sweep.MinSignal
	file.Detection.Sweep.SavePercent = d.Sweep.SavePercent
	file.Detection.Sweep.TrailingWeeks = d.Sweep.TrailingWeeks
	file.Detection.Roundup.MinTotal = d.Roundup.MinTotal
	file.Detection.Roundup.WindowDays = d.Roundup.WindowDays
	file.Detection.DailySavingsVelocity = d.DailySavingsVelocity
	file.Rewards.TreasuryAddress = c.Rewards.TreasuryAddress
	file.Sandbox.BankLatency = c.Sandbox.BankLatency
	file.Sandbox.RailLatency = c.Sandbox.RailLatency

	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	c.Detection = domain.DetectionConfig{
		Windfall: domain.WindfallConfig{
			Threshold:   file.Detection.Windfall.Threshold,
			SavePercent: file.Detection.Windfall.SavePercent,
			RecentDays:  file.Detection.Windfall.RecentDays,
		},
		Sweep: domain.SweepConfig{
			MinSignal:     file.Detection.Sweep.MinSignal,
			SavePercent:   file.Detection.Sweep.SavePercent,
			TrailingWeeks: file.Detection.Sweep.TrailingWeeks,
		},
		Roundup: domain.RoundupConfig{
			MinTotal:   file.Detection.Roundup.MinTotal,
			WindowDays: file.Detection.Roundup.WindowDays,
		},
		DailySavingsVelocity: file.Detection.DailySavingsVelocity,
	}

	for kind, multiplier := range file.Rewards.Multipliers {
		c.Rewards.Multipliers[domain.RewardKind(kind)] = multiplier
	}
	if len(file.Rewards.StreakBonuses) > 0 {
		c.Rewards.StreakBonuses = file.Rewards.StreakBonuses
	}
	c.Rewards.TreasuryAddress = file.Rewards.TreasuryAddress

	for _, card := range file.Catalog.GiftCards {
		c.Catalog.GiftCards = append(c.Catalog.GiftCards, domain.GiftCard{
			ID:            card.ID,
			Brand:         card.Brand,
			Denominations: card.Denominations,
		})
	}
	for _, charity := range file.Catalog.Charities {
		c.Catalog.Charities = append(c.Catalog.Charities, domain.Charity{
			ID:            charity.ID,
			Name:          charity.Name,
			WalletAddress: charity.WalletAddress,
			Description:   charity.Description,
		})
	}

	c.Sandbox.BankLatency = file.Sandbox.BankLatency
	c.Sandbox.RailLatency = file.Sandbox.RailLatency
	for _, account := range file.Sandbox.Accounts {
		c.Sandbox.Accounts = append(c.Sandbox.Accounts, domain.Account{
			ID:           account.ID,
			EntityID:     account.EntityID,
			Name:         account.Name,
			BalanceCents: account.BalanceCents,
			IsMain:       account.IsMain,
		})
	}

	return nil
}
