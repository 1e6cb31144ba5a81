package model

import (
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/shopspring/decimal"
)

// TieredRates holds optional flat rates that replace per-day pricing once the
// rental duration crosses the tier threshold.
type TieredRates struct {
	ThreeDay *decimal.Decimal `json:"three_day,omitempty"`
	SevenDay *decimal.Decimal `json:"seven_day,omitempty"`
}

// RentalQuoteRequest carries pricing inputs and the requested date range.
// Dates are calendar dates in "2006-01-02" format with no time component.
type RentalQuoteRequest struct {
	DailyRate        decimal.Decimal `json:"daily_rate"`
	TieredRates      TieredRates     `json:"tiered_rates"`
	SecurityDeposit  decimal.Decimal `json:"security_deposit"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	UnavailableDates []string        `json:"unavailable_dates"`
}

// VariantQuoteRequest quotes a rental against a catalog product; pricing and
// already-booked dates are resolved server side.
type VariantQuoteRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RentalQuote struct {
	QuoteID         string          `json:"quote_id"`
	DurationDays    int             `json:"duration_days"`
	RentalCost      decimal.Decimal `json:"rental_cost"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	TotalDue        decimal.Decimal `json:"total_due"`
}

// RentalQuoteResponse is a discriminated result: either Valid with a Quote, or
// invalid with the first failing check's Reason.
type RentalQuoteResponse struct {
	Valid  bool                         `json:"valid"`
	Reason constant.RentalDateErrorKind `json:"reason,omitempty"`
	Quote  *RentalQuote                 `json:"quote,omitempty"`
}

type LatePenaltyRequest struct {
	DailyRate          decimal.Decimal `json:"daily_rate"`
	ExpectedReturnDate string          `json:"expected_return_date" validate:"required"`
	ActualReturnDate   string          `json:"actual_return_date" validate:"required"`
	PenaltyMultiplier  *int            `json:"penalty_multiplier,omitempty"`
}

type LatePenaltyResponse struct {
	LateDays int             `json:"late_days"`
	Penalty  decimal.Decimal `json:"penalty"`
}
