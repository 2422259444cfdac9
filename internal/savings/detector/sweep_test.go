package detector

import (
	"testing"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSweep(t *testing.T) {
	t.Parallel()

	// 2026-10-14 is a Wednesday, the week opened on Sunday 2026-10-11.
	now := day("2026-10-14")
	cfg := domain.DefaultDetectionConfig().Sweep

	trailing := []domain.Transaction{
		spend("2026-09-14", "250"),
		spend("2026-09-21", "250"),
		spend("2026-09-28", "250"),
		spend("2026-10-05", "250"),
	}

	tests := []struct {
		name            string
		transactions    []domain.Transaction
		wantSweep       bool
		wantRecommended string
		wantUnspent     string
		wantAverage     string
		wantThisWeek    string
	}{
		{
			name:            "under weekly average",
			transactions:    append(append([]domain.Transaction{}, trailing...), spend("2026-10-12", "90")),
			wantSweep:       true,
			wantRecommended: "80",
			wantUnspent:     "160",
			wantAverage:     "250",
			wantThisWeek:    "90",
		},
		{
			name:            "nothing spent this week",
			transactions:    trailing,
			wantSweep:       true,
			wantRecommended: "125",
			wantUnspent:     "250",
			wantAverage:     "250",
			wantThisWeek:    "0",
		},
		{
			name:         "over weekly average",
			transactions: append(append([]domain.Transaction{}, trailing...), spend("2026-10-12", "300")),
			wantSweep:    false,
		},
		{
			name:         "difference below signal",
			transactions: append(append([]domain.Transaction{}, trailing...), spend("2026-10-13", "246")),
			wantSweep:    false,
		},
		{
			name:         "no spending at all",
			transactions: []domain.Transaction{income("2026-10-01", "2000")},
			wantSweep:    false,
		},
		{
			name: "spend older than trailing window is ignored",
			transactions: []domain.Transaction{
				spend("2026-09-12", "5000"),
				spend("2026-10-12", "10"),
			},
			wantSweep: false,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := DetectSweep(tt.transactions, now, cfg)

			assert.Equal(t, tt.wantSweep, result.HasSweep)
			if !tt.wantSweep {
				assert.Nil(t, result.Suggestion)
				return
			}

			require.NotNil(t, result.Suggestion)
			assert.Equal(t, domain.SuggestionSweep, result.Suggestion.Kind)
			assertDecimal(t, tt.wantRecommended, result.Suggestion.RecommendedAmount)

			evidence, ok := result.Suggestion.Evidence.(domain.SweepEvidence)
			require.True(t, ok)
			assertDecimal(t, tt.wantUnspent, evidence.UnspentBudget)
			assertDecimal(t, tt.wantAverage, evidence.WeeklyAverage)
			assertDecimal(t, tt.wantThisWeek, evidence.ThisWeekSpend)
		})
	}
}

func TestWeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "sunday", in: "2026-10-11", want: "2026-10-11"},
		{name: "wednesday", in: "2026-10-14", want: "2026-10-11"},
		{name: "saturday", in: "2026-10-17", want: "2026-10-11"},
		{name: "across month", in: "2026-11-02", want: "2026-11-01"},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, day(tt.want), weekStart(day(tt.in)))
		})
	}
}
