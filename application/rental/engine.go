package rental

import (
	"time"

	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
	"github.com/shopspring/decimal"
)

// ValidationResult reports whether a rental date range passed validation and,
// when it did not, the first failing check.
type ValidationResult struct {
	Valid  bool
	Reason constant.RentalDateErrorKind
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(reason constant.RentalDateErrorKind) ValidationResult {
	return ValidationResult{Reason: reason}
}

// DateOnly normalizes a timestamp to its calendar day. All comparisons in this
// package are at day granularity in a single reference timezone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateRentalDates runs the rental date checks in a fixed order and stops
// at the first failure: dates present, start not past, end not before start,
// duration within bounds, no day of the range already booked. The reference
// date is passed in so callers control "today".
func ValidateRentalDates(today, start, end time.Time, unavailable []time.Time) ValidationResult {
	if start.IsZero() || end.IsZero() {
		return invalid(constant.RentalDateMissing)
	}

	today = DateOnly(today)
	start = DateOnly(start)
	end = DateOnly(end)

	if start.Before(today) {
		return invalid(constant.RentalDatePastStart)
	}
	if end.Before(start) {
		return invalid(constant.RentalDateEndBeforeStart)
	}

	duration := ComputeRentalDuration(start, end)
	if duration < constant.MinRentalDays {
		return invalid(constant.RentalDateBelowMinimum)
	}
	if duration > constant.MaxRentalDays {
		return invalid(constant.RentalDateAboveMaximum)
	}

	booked := make(map[time.Time]struct{}, len(unavailable))
	for _, d := range unavailable {
		booked[DateOnly(d)] = struct{}{}
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := booked[d]; ok {
			return invalid(constant.RentalDateUnavailable)
		}
	}

	return valid()
}

// ComputeRentalDuration counts whole days between the dates inclusive of both
// endpoints: same start and end is 1 day. When end precedes start the result
// is zero or negative and the caller must treat it as invalid.
func ComputeRentalDuration(start, end time.Time) int {
	days := int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
	return days + 1
}

// PriceRental picks the flat tier rate once duration crosses its threshold
// (a 9-day rental pays the flat 7-day rate, not 9 daily rates) and falls back
// to dailyRate × duration when the tier rate is absent. Never negative.
func PriceRental(dailyRate decimal.Decimal, tiered model.TieredRates, durationDays int) decimal.Decimal {
	var cost decimal.Decimal
	switch {
	case durationDays >= constant.SevenDayTierThreshold && tiered.SevenDay != nil:
		cost = *tiered.SevenDay
	case durationDays >= constant.ThreeDayTierThreshold && tiered.ThreeDay != nil:
		cost = *tiered.ThreeDay
	default:
		cost = dailyRate.Mul(decimal.NewFromInt(int64(durationDays)))
	}

	if cost.IsNegative() {
		return decimal.Zero
	}
	return cost
}

// ComputeGrandTotal adds the refundable deposit on top of the rental cost.
// Kept separate so receipts can surface the deposit independently.
func ComputeGrandTotal(rentalCost, securityDeposit decimal.Decimal) decimal.Decimal {
	return rentalCost.Add(securityDeposit)
}

// LateReturnPenalty charges dailyRate × multiplier per day the item came back
// after the expected return date. Returning on time or early costs nothing.
func LateReturnPenalty(dailyRate decimal.Decimal, expectedReturn, actualReturn time.Time, multiplier int) (int, decimal.Decimal) {
	lateDays := int(DateOnly(actualReturn).Sub(DateOnly(expectedReturn)).Hours() / 24)
	if lateDays <= 0 {
		return 0, decimal.Zero
	}

	penalty := dailyRate.
		Mul(decimal.NewFromInt(int64(lateDays))).
		Mul(decimal.NewFromInt(int64(multiplier)))
	if penalty.IsNegative() {
		return lateDays, decimal.Zero
	}
	return lateDays, penalty
}
