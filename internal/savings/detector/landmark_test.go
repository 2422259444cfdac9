package detector

import (
	"testing"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectLandmark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		today        string
		wantFound    bool
		wantKind     domain.LandmarkKind
		wantIncrease string
	}{
		{name: "new year", today: "2026-01-01", wantFound: true, wantKind: domain.LandmarkNewYear, wantIncrease: "0.15"},
		{name: "new year on a monday", today: "2024-01-01", wantFound: true, wantKind: domain.LandmarkNewYear, wantIncrease: "0.15"},
		{name: "month start on a monday", today: "2026-06-01", wantFound: true, wantKind: domain.LandmarkMonthStart, wantIncrease: "0.10"},
		{name: "month start", today: "2026-10-01", wantFound: true, wantKind: domain.LandmarkMonthStart, wantIncrease: "0.10"},
		{name: "plain monday", today: "2026-10-12", wantFound: true, wantKind: domain.LandmarkMonday, wantIncrease: "0.05"},
		{name: "ordinary day", today: "2026-10-14", wantFound: false},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			landmark, found := DetectLandmark(day(tt.today))

			assert.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				return
			}

			assert.Equal(t, tt.wantKind, landmark.Kind)
			assertDecimal(t, tt.wantIncrease, landmark.SuggestedIncrease)
			assert.NotEmpty(t, landmark.Message)
		})
	}
}
