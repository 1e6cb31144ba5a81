package rental_test

import (
	"testing"
	"time"

	apprental "github.com/muhammadheryan/rental-commerce/application/rental"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func TestComputeRentalDuration(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same start and end is one day",
			start: date(2025, 1, 10),
			end:   date(2025, 1, 10),
			want:  1,
		},
		{
			name:  "inclusive of both endpoints",
			start: date(2025, 1, 10),
			end:   date(2025, 1, 12),
			want:  3,
		},
		{
			name:  "across month boundary",
			start: date(2025, 1, 30),
			end:   date(2025, 2, 2),
			want:  4,
		},
		{
			name:  "end before start is non-positive",
			start: date(2025, 1, 10),
			end:   date(2025, 1, 8),
			want:  -1,
		},
		{
			name:  "time of day is ignored",
			start: time.Date(2025, 1, 10, 23, 30, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 11, 0, 15, 0, 0, time.UTC),
			want:  2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := apprental.ComputeRentalDuration(tt.start, tt.end); got != tt.want {
				t.Fatalf("ComputeRentalDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateRentalDates(t *testing.T) {
	today := date(2025, 1, 5)

	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		unavailable []time.Time
		wantValid   bool
		wantReason  constant.RentalDateErrorKind
	}{
		{
			name:      "valid range",
			start:     date(2025, 1, 10),
			end:       date(2025, 1, 12),
			wantValid: true,
		},
		{
			name:      "single day rental on today",
			start:     date(2025, 1, 5),
			end:       date(2025, 1, 5),
			wantValid: true,
		},
		{
			name:       "missing start date",
			end:        date(2025, 1, 12),
			wantReason: constant.RentalDateMissing,
		},
		{
			name:       "missing end date",
			start:      date(2025, 1, 10),
			wantReason: constant.RentalDateMissing,
		},
		{
			name:       "start in the past",
			start:      date(2025, 1, 4),
			end:        date(2025, 1, 12),
			wantReason: constant.RentalDatePastStart,
		},
		{
			name:       "end before start",
			start:      date(2025, 1, 12),
			end:        date(2025, 1, 10),
			wantReason: constant.RentalDateEndBeforeStart,
		},
		{
			name:       "above maximum duration",
			start:      date(2025, 1, 10),
			end:        date(2025, 2, 20),
			wantReason: constant.RentalDateAboveMaximum,
		},
		{
			name:      "exactly maximum duration",
			start:     date(2025, 1, 10),
			end:       date(2025, 2, 8),
			wantValid: true,
		},
		{
			name:        "blackout date inside range",
			start:       date(2025, 1, 10),
			end:         date(2025, 1, 12),
			unavailable: []time.Time{date(2025, 1, 11)},
			wantReason:  constant.RentalDateUnavailable,
		},
		{
			name:        "blackout date on boundary",
			start:       date(2025, 1, 10),
			end:         date(2025, 1, 12),
			unavailable: []time.Time{date(2025, 1, 12)},
			wantReason:  constant.RentalDateUnavailable,
		},
		{
			name:        "blackout date outside range",
			start:       date(2025, 1, 10),
			end:         date(2025, 1, 12),
			unavailable: []time.Time{date(2025, 1, 13)},
			wantValid:   true,
		},
		{
			name:       "first failing check wins: past start beats max duration",
			start:      date(2025, 1, 1),
			end:        date(2025, 2, 10),
			wantReason: constant.RentalDatePastStart,
		},
		{
			name:        "first failing check wins: end before start beats blackout",
			start:       date(2025, 1, 12),
			end:         date(2025, 1, 10),
			unavailable: []time.Time{date(2025, 1, 11)},
			wantReason:  constant.RentalDateEndBeforeStart,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := apprental.ValidateRentalDates(today, tt.start, tt.end, tt.unavailable)
			if got.Valid != tt.wantValid {
				t.Fatalf("ValidateRentalDates() valid = %v, want %v (reason %s)", got.Valid, tt.wantValid, got.Reason)
			}
			if !tt.wantValid && got.Reason != tt.wantReason {
				t.Fatalf("ValidateRentalDates() reason = %s, want %s", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestPriceRental(t *testing.T) {
	tiered := model.TieredRates{
		ThreeDay: decPtr("250"),
		SevenDay: decPtr("400"),
	}

	tests := []struct {
		name     string
		rate     decimal.Decimal
		tiered   model.TieredRates
		duration int
		want     decimal.Decimal
	}{
		{
			name:     "below three day tier uses daily rate",
			rate:     dec("100"),
			tiered:   tiered,
			duration: 2,
			want:     dec("200"),
		},
		{
			name:     "exactly three days hits three day tier",
			rate:     dec("100"),
			tiered:   tiered,
			duration: 3,
			want:     dec("250"),
		},
		{
			name:     "six days still three day tier",
			rate:     dec("100"),
			tiered:   tiered,
			duration: 6,
			want:     dec("250"),
		},
		{
			name:     "exactly seven days hits seven day tier",
			rate:     dec("100"),
			tiered:   tiered,
			duration: 7,
			want:     dec("400"),
		},
		{
			name:     "nine days still flat seven day rate",
			rate:     dec("100"),
			tiered:   tiered,
			duration: 9,
			want:     dec("400"),
		},
		{
			name:     "no tiers falls back to daily multiplication",
			rate:     dec("100"),
			tiered:   model.TieredRates{},
			duration: 5,
			want:     dec("500"),
		},
		{
			name:     "seven days without seven day tier uses three day tier",
			rate:     dec("100"),
			tiered:   model.TieredRates{ThreeDay: decPtr("250")},
			duration: 7,
			want:     dec("250"),
		},
		{
			name:     "zero daily rate yields zero",
			rate:     decimal.Zero,
			tiered:   model.TieredRates{},
			duration: 4,
			want:     decimal.Zero,
		},
		{
			name:     "negative daily rate clamps to zero",
			rate:     dec("-50"),
			tiered:   model.TieredRates{},
			duration: 4,
			want:     decimal.Zero,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := apprental.PriceRental(tt.rate, tt.tiered, tt.duration)
			if !got.Equal(tt.want) {
				t.Fatalf("PriceRental() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeGrandTotal(t *testing.T) {
	got := apprental.ComputeGrandTotal(dec("400"), dec("150"))
	if !got.Equal(dec("550")) {
		t.Fatalf("ComputeGrandTotal() = %s, want 550", got)
	}
}

func TestLateReturnPenalty(t *testing.T) {
	tests := []struct {
		name       string
		rate       decimal.Decimal
		expected   time.Time
		actual     time.Time
		multiplier int
		wantDays   int
		wantAmount decimal.Decimal
	}{
		{
			name:       "three days late at double rate",
			rate:       dec("200"),
			expected:   date(2025, 1, 10),
			actual:     date(2025, 1, 13),
			multiplier: 2,
			wantDays:   3,
			wantAmount: dec("1200"),
		},
		{
			name:       "on time return costs nothing",
			rate:       dec("200"),
			expected:   date(2025, 1, 10),
			actual:     date(2025, 1, 10),
			multiplier: 2,
			wantDays:   0,
			wantAmount: decimal.Zero,
		},
		{
			name:       "early return costs nothing",
			rate:       dec("200"),
			expected:   date(2025, 1, 10),
			actual:     date(2025, 1, 8),
			multiplier: 2,
			wantDays:   0,
			wantAmount: decimal.Zero,
		},
		{
			name:       "one day late single multiplier",
			rate:       dec("150"),
			expected:   date(2025, 1, 10),
			actual:     date(2025, 1, 11),
			multiplier: 1,
			wantDays:   1,
			wantAmount: dec("150"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			days, amount := apprental.LateReturnPenalty(tt.rate, tt.expected, tt.actual, tt.multiplier)
			if days != tt.wantDays {
				t.Fatalf("LateReturnPenalty() days = %d, want %d", days, tt.wantDays)
			}
			if !amount.Equal(tt.wantAmount) {
				t.Fatalf("LateReturnPenalty() amount = %s, want %s", amount, tt.wantAmount)
			}
		})
	}
}
