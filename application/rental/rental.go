package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/rental-commerce/cmd/config"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
	bookingrepo "github.com/muhammadheryan/rental-commerce/repository/booking"
	productrepo "github.com/muhammadheryan/rental-commerce/repository/product"
	"github.com/muhammadheryan/rental-commerce/utils/errors"
	"github.com/muhammadheryan/rental-commerce/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RentalApp interface {
	Quote(ctx context.Context, req *model.RentalQuoteRequest) (*model.RentalQuoteResponse, error)
	QuoteProduct(ctx context.Context, productID uint64, req *model.VariantQuoteRequest) (*model.RentalQuoteResponse, error)
	LatePenalty(ctx context.Context, req *model.LatePenaltyRequest) (*model.LatePenaltyResponse, error)
}

type rentalAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	bookingRepo bookingrepo.BookingRepository
	now         func() time.Time
}

// NewRentalApp builds the rental quote application. The now func supplies the
// reference date for past-date checks; production wiring passes time.Now.
func NewRentalApp(config *config.Config, productRepo productrepo.ProductRepository, bookingRepo bookingrepo.BookingRepository, now func() time.Time) RentalApp {
	return &rentalAppImpl{
		config:      config,
		productRepo: productRepo,
		bookingRepo: bookingRepo,
		now:         now,
	}
}

func (s *rentalAppImpl) Quote(ctx context.Context, req *model.RentalQuoteRequest) (*model.RentalQuoteResponse, error) {
	if req.DailyRate.IsNegative() || req.SecurityDeposit.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	unavailable := make([]time.Time, 0, len(req.UnavailableDates))
	for _, raw := range req.UnavailableDates {
		d, err := time.Parse(constant.DateLayout, raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		unavailable = append(unavailable, d)
	}

	return s.buildQuote(start, end, unavailable, req.DailyRate, req.TieredRates, req.SecurityDeposit), nil
}

// QuoteProduct quotes against a catalog product: pricing comes from the
// product's rental pricing and confirmed booking dates are merged into the
// unavailable set server side.
func (s *rentalAppImpl) QuoteProduct(ctx context.Context, productID uint64, req *model.VariantQuoteRequest) (*model.RentalQuoteResponse, error) {
	detail, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[QuoteProduct] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if detail.Kind != model.PricingKindRental || detail.Rental == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotRentable)
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	ranges, err := s.bookingRepo.ListBookedRanges(ctx, productID)
	if err != nil {
		logger.Error("[QuoteProduct] list booked ranges", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	unavailable := expandRanges(ranges)

	pricing := detail.Rental
	return s.buildQuote(start, end, unavailable, pricing.DailyRate, pricing.TieredRates, pricing.SecurityDeposit), nil
}

func (s *rentalAppImpl) LatePenalty(ctx context.Context, req *model.LatePenaltyRequest) (*model.LatePenaltyResponse, error) {
	if req.DailyRate.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	expected, err := time.Parse(constant.DateLayout, req.ExpectedReturnDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	actual, err := time.Parse(constant.DateLayout, req.ActualReturnDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	multiplier := s.config.Rental.PenaltyMultiplier
	if req.PenaltyMultiplier != nil {
		if *req.PenaltyMultiplier < 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		multiplier = *req.PenaltyMultiplier
	}

	lateDays, penalty := LateReturnPenalty(req.DailyRate, expected, actual, multiplier)
	return &model.LatePenaltyResponse{
		LateDays: lateDays,
		Penalty:  penalty,
	}, nil
}

func (s *rentalAppImpl) buildQuote(start, end time.Time, unavailable []time.Time, dailyRate decimal.Decimal, tiered model.TieredRates, deposit decimal.Decimal) *model.RentalQuoteResponse {
	result := ValidateRentalDates(s.now(), start, end, unavailable)
	if !result.Valid {
		return &model.RentalQuoteResponse{Valid: false, Reason: result.Reason}
	}

	duration := ComputeRentalDuration(start, end)
	cost := PriceRental(dailyRate, tiered, duration)
	return &model.RentalQuoteResponse{
		Valid: true,
		Quote: &model.RentalQuote{
			QuoteID:         uuid.NewString(),
			DurationDays:    duration,
			RentalCost:      cost,
			SecurityDeposit: deposit,
			TotalDue:        ComputeGrandTotal(cost, deposit),
		},
	}
}

// parseRange parses the wire dates; empty strings stay zero so validation can
// report MissingDate, while malformed input is rejected outright.
func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startRaw != "" {
		if start, err = time.Parse(constant.DateLayout, startRaw); err != nil {
			return time.Time{}, time.Time{}, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	if endRaw != "" {
		if end, err = time.Parse(constant.DateLayout, endRaw); err != nil {
			return time.Time{}, time.Time{}, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return start, end, nil
}

func expandRanges(ranges []model.BookedRange) []time.Time {
	dates := make([]time.Time, 0)
	for _, r := range ranges {
		for d := DateOnly(r.StartDate); !d.After(DateOnly(r.EndDate)); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	}
	return dates
}
