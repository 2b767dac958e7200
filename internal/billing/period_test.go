package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCurrentClosedPeriod(t *testing.T) {
	cases := []struct {
		name      string
		cutoffDay int
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "after cutoff",
			cutoffDay: 15,
			ref:       date(2026, time.February, 21),
			wantStart: date(2026, time.January, 15),
			wantEnd:   date(2026, time.February, 14),
		},
		{
			name:      "on cutoff day",
			cutoffDay: 15,
			ref:       date(2026, time.February, 15),
			wantStart: date(2026, time.January, 15),
			wantEnd:   date(2026, time.February, 14),
		},
		{
			name:      "before cutoff",
			cutoffDay: 15,
			ref:       date(2026, time.February, 10),
			wantStart: date(2025, time.December, 15),
			wantEnd:   date(2026, time.January, 14),
		},
		{
			name:      "first of month cutoff is previous calendar month",
			cutoffDay: 1,
			ref:       date(2026, time.February, 21),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.January, 31),
		},
		{
			name:      "year boundary",
			cutoffDay: 15,
			ref:       date(2026, time.January, 20),
			wantStart: date(2025, time.December, 15),
			wantEnd:   date(2026, time.January, 14),
		},
		{
			name:      "cutoff 31 clamps in short months",
			cutoffDay: 31,
			ref:       date(2026, time.March, 15),
			wantStart: date(2026, time.January, 31),
			wantEnd:   date(2026, time.February, 27), // Feb cutoff clamps to the 28th
		},
		{
			name:      "cutoff 31 clamps on the end boundary",
			cutoffDay: 31,
			ref:       date(2026, time.May, 5),
			wantStart: date(2026, time.March, 31),
			wantEnd:   date(2026, time.April, 29), // April cutoff clamps to the 30th
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrentClosedPeriod(tc.cutoffDay, tc.ref)
			assert.True(t, got.Start.Equal(tc.wantStart), "start: expected %s, got %s", tc.wantStart, got.Start)
			assert.True(t, got.End.Equal(tc.wantEnd), "end: expected %s, got %s", tc.wantEnd, got.End)
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := CurrentClosedPeriod(15, date(2026, time.February, 21))

	assert.True(t, p.Contains(date(2026, time.January, 15)))
	assert.True(t, p.Contains(date(2026, time.February, 14)))
	assert.True(t, p.Contains(time.Date(2026, time.February, 14, 23, 59, 0, 0, time.Local)))
	assert.False(t, p.Contains(date(2026, time.January, 14)))
	assert.False(t, p.Contains(date(2026, time.February, 15)))
}

func TestPeriodString(t *testing.T) {
	p := CurrentClosedPeriod(15, date(2026, time.February, 21))
	assert.Equal(t, "[2026-01-15, 2026-02-14]", p.String())
}

func TestBalance(t *testing.T) {
	d := decimal.RequireFromString

	got := Balance(
		[]decimal.Decimal{d("100.50"), d("49600")},
		[]decimal.Decimal{d("600.50")},
	)
	assert.Equal(t, "49100.00", got.StringFixed(2))
}

func TestBalance_OverpaymentGoesNegative(t *testing.T) {
	d := decimal.RequireFromString

	got := Balance(
		[]decimal.Decimal{d("100")},
		[]decimal.Decimal{d("150")},
	)
	assert.Equal(t, "-50", got.String())
}

func TestBalance_Empty(t *testing.T) {
	assert.True(t, Balance(nil, nil).IsZero())
}
