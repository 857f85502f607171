package closing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mise-ops/chobo/internal/closing"
)

func TestDailyClosing_Derivations(t *testing.T) {
	type testCase struct {
		name string
		c    closing.DailyClosing

		wantExpected int64
		wantDiff     int64
		wantIssue    bool
		wantCounted  bool
	}

	tests := []testCase{
		{
			name: "BalancedDrawer",
			c: closing.DailyClosing{
				PreviousCashBalance: 30000,
				CashSales:           6000,
				CashInTotal:         20000,
				CashOutTotal:        2500,
				ActualCashBalance:   53500,
				Status:              closing.StatusConfirmed,
			},
			wantExpected: 53500,
			wantDiff:     0,
			wantIssue:    false,
			wantCounted:  true,
		},
		{
			name: "ShortAtThreshold",
			c: closing.DailyClosing{
				PreviousCashBalance: 10000,
				ActualCashBalance:   9000,
				Status:              closing.StatusApproved,
			},
			wantExpected: 10000,
			wantDiff:     -1000,
			wantIssue:    true,
			wantCounted:  true,
		},
		{
			name: "ShortJustBelowThreshold",
			c: closing.DailyClosing{
				PreviousCashBalance: 10000,
				ActualCashBalance:   9001,
				Status:              closing.StatusApproved,
			},
			wantExpected: 10000,
			wantDiff:     -999,
			wantIssue:    false,
			wantCounted:  true,
		},
		{
			name: "OverAtThreshold",
			c: closing.DailyClosing{
				PreviousCashBalance: 10000,
				ActualCashBalance:   11000,
				Status:              closing.StatusConfirmed,
			},
			wantExpected: 10000,
			wantDiff:     1000,
			wantIssue:    true,
			wantCounted:  true,
		},
		{
			name: "DraftNeverCounted",
			c: closing.DailyClosing{
				PreviousCashBalance: 10000,
				ActualCashBalance:   50000,
				Status:              closing.StatusDraft,
			},
			wantExpected: 10000,
			wantDiff:     40000,
			wantIssue:    true,
			wantCounted:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExpected, tt.c.ExpectedCashBalance())
			assert.Equal(t, tt.wantDiff, tt.c.Difference())
			assert.Equal(t, tt.wantIssue, tt.c.HasIssue())
			assert.Equal(t, tt.wantCounted, tt.c.Counted())
		})
	}
}

func TestDailyClosing_DateIrrelevantToDerivations(t *testing.T) {
	c := closing.DailyClosing{
		Date:                time.Date(2024, 6, 15, 22, 30, 0, 0, time.UTC),
		PreviousCashBalance: 1000,
		ActualCashBalance:   1000,
		Status:              closing.StatusConfirmed,
	}

	assert.Equal(t, int64(0), c.Difference())
	assert.False(t, c.HasIssue())
}
