package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	minWindfallThreshold   = decimal.RequireFromString("1.2")
	maxWindfallThreshold   = decimal.RequireFromString("1.5")
	minWindfallSavePercent = decimal.RequireFromString("0.10")
	maxWindfallSavePercent = decimal.RequireFromString("0.20")
)

type WindfallConfig struct {
	// Threshold is the multiple of baseline monthly income a deposit must exceed.
	Threshold   decimal.Decimal
	SavePercent decimal.Decimal
	// RecentDays bounds how far back a deposit still counts as a fresh windfall.
	RecentDays int
}

type SweepConfig struct {
	MinSignal     decimal.Decimal
	SavePercent   decimal.Decimal
	TrailingWeeks int
}

type RoundupConfig struct {
	MinTotal   decimal.Decimal
	WindowDays int
}

type DetectionConfig struct {
	Windfall WindfallConfig
	Sweep    SweepConfig
	Roundup  RoundupConfig
	// DailySavingsVelocity is the assumed amount saved per day toward a goal.
	DailySavingsVelocity decimal.Decimal
}

func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		Windfall: WindfallConfig{
			Threshold:   decimal.RequireFromString("1.2"),
			SavePercent: decimal.RequireFromString("0.10"),
			RecentDays:  30,
		},
		Sweep: SweepConfig{
			MinSignal:     decimal.NewFromInt(5),
			SavePercent:   decimal.RequireFromString("0.5"),
			TrailingWeeks: 4,
		},
		Roundup: RoundupConfig{
			MinTotal:   decimal.NewFromInt(1),
			WindowDays: 30,
		},
		DailySavingsVelocity: decimal.NewFromInt(5),
	}
}

func (c DetectionConfig) Validate() error {
	w := c.Windfall
	if w.Threshold.LessThan(minWindfallThreshold) || w.Threshold.GreaterThan(maxWindfallThreshold) {
		return &ValidationError{Msg: fmt.Sprintf("windfall threshold %s outside [%s, %s]", w.Threshold, minWindfallThreshold, maxWindfallThreshold)}
	}
	if w.SavePercent.LessThan(minWindfallSavePercent) || w.SavePercent.GreaterThan(maxWindfallSavePercent) {
		return &ValidationError{Msg: fmt.Sprintf("windfall save percent %s outside [%s, %s]", w.SavePercent, minWindfallSavePercent, maxWindfallSavePercent)}
	}
	if w.RecentDays <= 0 {
		return &ValidationError{Msg: "windfall recent days must be positive"}
	}

	s := c.Sweep
	if s.MinSignal.IsNegative() {
		return &ValidationError{Msg: "sweep minimum signal must not be negative"}
	}
	if !s.SavePercent.IsPositive() || s.SavePercent.GreaterThan(decimal.NewFromInt(1)) {
		return &ValidationError{Msg: "sweep save percent must be in (0, 1]"}
	}
	if s.TrailingWeeks <= 0 {
		return &ValidationError{Msg: "sweep trailing weeks must be positive"}
	}

	r := c.Roundup
	if r.MinTotal.IsNegative() {
		return &ValidationError{Msg: "round-up minimum total must not be negative"}
	}
	if r.WindowDays <= 0 {
		return &ValidationError{Msg: "round-up window days must be positive"}
	}

	if !c.DailySavingsVelocity.IsPositive() {
		return &ValidationError{Msg: "daily savings velocity must be positive"}
	}

	return nil
}

type RewardConfig struct {
	Multipliers map[RewardKind]decimal.Decimal
	// StreakBonuses maps a savings streak length in weeks to a fixed bonus.
	StreakBonuses   map[int]decimal.Decimal
	TreasuryAddress string
}

func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		Multipliers: map[RewardKind]decimal.Decimal{
			RewardWindfall: decimal.RequireFromString("0.05"),
			RewardSweep:    decimal.RequireFromString("0.03"),
			RewardRoundup:  decimal.RequireFromString("0.01"),
		},
		StreakBonuses: map[int]decimal.Decimal{
			4:  decimal.NewFromInt(10),
			8:  decimal.NewFromInt(15),
			12: decimal.NewFromInt(25),
		},
	}
}

func (c RewardConfig) Multiplier(kind RewardKind) (decimal.Decimal, bool) {
	m, ok := c.Multipliers[kind]
	return m, ok
}

func (c RewardConfig) Validate() error {
	for kind, multiplier := range c.Multipliers {
		if !kind.IsCredit() {
			return &ValidationError{Msg: fmt.Sprintf("reward multiplier configured for non-credit kind %s", kind)}
		}
		if multiplier.IsNegative() {
			return &ValidationError{Msg: fmt.Sprintf("reward multiplier for %s must not be negative", kind)}
		}
	}

	for weeks, bonus := range c.StreakBonuses {
		if weeks <= 0 || !bonus.IsPositive() {
			return &ValidationError{Msg: fmt.Sprintf("invalid streak bonus %d weeks -> %s", weeks, bonus)}
		}
	}

	return nil
}
