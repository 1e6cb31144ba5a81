package rental_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apprental "github.com/muhammadheryan/rental-commerce/application/rental"
	"github.com/muhammadheryan/rental-commerce/cmd/config"
	"github.com/muhammadheryan/rental-commerce/constant"
	bookingmocks "github.com/muhammadheryan/rental-commerce/mocks/repository/booking"
	productmocks "github.com/muhammadheryan/rental-commerce/mocks/repository/product"
	"github.com/muhammadheryan/rental-commerce/model"
	cerr "github.com/muhammadheryan/rental-commerce/utils/errors"
	"github.com/stretchr/testify/mock"
)

// fixedNow pins the reference date so date-boundary cases are deterministic
func fixedNow() time.Time {
	return time.Date(2025, 1, 5, 15, 4, 5, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		Rental: config.RentalConfig{
			PenaltyMultiplier: 2,
		},
	}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestRentalApp_Quote(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.RentalQuoteRequest
	}
	tests := []struct {
		name       string
		args       args
		wantValid  bool
		wantReason constant.RentalDateErrorKind
		wantCost   string
		wantTotal  string
		wantDays   int
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: three day tier with deposit",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate:       dec("100"),
					TieredRates:     model.TieredRates{ThreeDay: decPtr("250"), SevenDay: decPtr("400")},
					SecurityDeposit: dec("150"),
					StartDate:       "2025-01-10",
					EndDate:         "2025-01-12",
				},
			},
			wantValid: true,
			wantDays:  3,
			wantCost:  "250",
			wantTotal: "400",
		},
		{
			name: "success: daily pricing without tiers",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate:       dec("100"),
					SecurityDeposit: dec("0"),
					StartDate:       "2025-01-10",
					EndDate:         "2025-01-11",
				},
			},
			wantValid: true,
			wantDays:  2,
			wantCost:  "200",
			wantTotal: "200",
		},
		{
			name: "invalid: blackout date in range",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate:        dec("100"),
					StartDate:        "2025-01-10",
					EndDate:          "2025-01-12",
					UnavailableDates: []string{"2025-01-11"},
				},
			},
			wantValid:  false,
			wantReason: constant.RentalDateUnavailable,
		},
		{
			name: "invalid: missing dates",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate: dec("100"),
				},
			},
			wantValid:  false,
			wantReason: constant.RentalDateMissing,
		},
		{
			name: "error: malformed start date",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate: dec("100"),
					StartDate: "10-01-2025",
					EndDate:   "2025-01-12",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: negative daily rate",
			args: args{
				ctx: context.Background(),
				req: &model.RentalQuoteRequest{
					DailyRate: dec("-10"),
					StartDate: "2025-01-10",
					EndDate:   "2025-01-12",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := apprental.NewRentalApp(testConfig(), productmocks.NewProductRepository(t), bookingmocks.NewBookingRepository(t), fixedNow)

			got, err := app.Quote(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Valid != tt.wantValid {
				t.Fatalf("Quote() valid = %v, want %v (reason %s)", got.Valid, tt.wantValid, got.Reason)
			}
			if !tt.wantValid {
				if got.Reason != tt.wantReason {
					t.Fatalf("Quote() reason = %s, want %s", got.Reason, tt.wantReason)
				}
				return
			}

			if got.Quote == nil {
				t.Fatal("Quote() quote is nil")
			}
			if got.Quote.QuoteID == "" {
				t.Fatal("Quote() quote id is empty")
			}
			if got.Quote.DurationDays != tt.wantDays {
				t.Fatalf("Quote() duration = %d, want %d", got.Quote.DurationDays, tt.wantDays)
			}
			if !got.Quote.RentalCost.Equal(dec(tt.wantCost)) {
				t.Fatalf("Quote() cost = %s, want %s", got.Quote.RentalCost, tt.wantCost)
			}
			if !got.Quote.TotalDue.Equal(dec(tt.wantTotal)) {
				t.Fatalf("Quote() total = %s, want %s", got.Quote.TotalDue, tt.wantTotal)
			}
		})
	}
}

func TestRentalApp_QuoteProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		bookingRepo *bookingmocks.BookingRepository
	}
	type args struct {
		ctx       context.Context
		productID uint64
		req       *model.VariantQuoteRequest
	}
	rentalProduct := &model.ProductDetail{
		ID:   7,
		Name: "Evening Gown",
		Kind: model.PricingKindRental,
		Rental: &model.RentalPricing{
			DailyRate:       dec("100"),
			TieredRates:     model.TieredRates{ThreeDay: decPtr("250"), SevenDay: decPtr("400")},
			SecurityDeposit: dec("150"),
		},
	}

	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantValid  bool
		wantReason constant.RentalDateErrorKind
		wantCost   string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: booked dates merged from bookings",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				bookingRepo: bookingmocks.NewBookingRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 7,
				req:       &model.VariantQuoteRequest{StartDate: "2025-01-10", EndDate: "2025-01-12"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(rentalProduct, nil).Once()
				f.bookingRepo.On("ListBookedRanges", mock.Anything, uint64(7)).Return([]model.BookedRange{
					{StartDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)},
				}, nil).Once()
			},
			wantValid: true,
			wantCost:  "250",
		},
		{
			name: "invalid: requested range overlaps a booking",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				bookingRepo: bookingmocks.NewBookingRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 7,
				req:       &model.VariantQuoteRequest{StartDate: "2025-01-10", EndDate: "2025-01-12"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(rentalProduct, nil).Once()
				f.bookingRepo.On("ListBookedRanges", mock.Anything, uint64(7)).Return([]model.BookedRange{
					{StartDate: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)},
				}, nil).Once()
			},
			wantValid:  false,
			wantReason: constant.RentalDateUnavailable,
		},
		{
			name: "error: product not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				bookingRepo: bookingmocks.NewBookingRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 99,
				req:       &model.VariantQuoteRequest{StartDate: "2025-01-10", EndDate: "2025-01-12"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: sale product cannot be rented",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				bookingRepo: bookingmocks.NewBookingRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 3,
				req:       &model.VariantQuoteRequest{StartDate: "2025-01-10", EndDate: "2025-01-12"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.ProductDetail{
					ID:   3,
					Name: "Plain Tee",
					Kind: model.PricingKindSale,
					Sale: &model.SalePricing{Price: dec("25")},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotRentable,
		},
		{
			name: "error: repository failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				bookingRepo: bookingmocks.NewBookingRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 7,
				req:       &model.VariantQuoteRequest{StartDate: "2025-01-10", EndDate: "2025-01-12"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apprental.NewRentalApp(testConfig(), tt.fields.productRepo, tt.fields.bookingRepo, fixedNow)

			got, err := app.QuoteProduct(tt.args.ctx, tt.args.productID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("QuoteProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Valid != tt.wantValid {
				t.Fatalf("QuoteProduct() valid = %v, want %v (reason %s)", got.Valid, tt.wantValid, got.Reason)
			}
			if !tt.wantValid {
				if got.Reason != tt.wantReason {
					t.Fatalf("QuoteProduct() reason = %s, want %s", got.Reason, tt.wantReason)
				}
				return
			}
			if !got.Quote.RentalCost.Equal(dec(tt.wantCost)) {
				t.Fatalf("QuoteProduct() cost = %s, want %s", got.Quote.RentalCost, tt.wantCost)
			}
		})
	}
}

func TestRentalApp_LatePenalty(t *testing.T) {
	one := 1

	tests := []struct {
		name     string
		req      *model.LatePenaltyRequest
		wantDays int
		wantPen  string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "three days late at default multiplier",
			req: &model.LatePenaltyRequest{
				DailyRate:          dec("200"),
				ExpectedReturnDate: "2025-01-10",
				ActualReturnDate:   "2025-01-13",
			},
			wantDays: 3,
			wantPen:  "1200",
		},
		{
			name: "request overrides multiplier",
			req: &model.LatePenaltyRequest{
				DailyRate:          dec("200"),
				ExpectedReturnDate: "2025-01-10",
				ActualReturnDate:   "2025-01-12",
				PenaltyMultiplier:  &one,
			},
			wantDays: 2,
			wantPen:  "400",
		},
		{
			name: "on time return",
			req: &model.LatePenaltyRequest{
				DailyRate:          dec("200"),
				ExpectedReturnDate: "2025-01-10",
				ActualReturnDate:   "2025-01-10",
			},
			wantDays: 0,
			wantPen:  "0",
		},
		{
			name: "error: malformed date",
			req: &model.LatePenaltyRequest{
				DailyRate:          dec("200"),
				ExpectedReturnDate: "not-a-date",
				ActualReturnDate:   "2025-01-10",
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := apprental.NewRentalApp(testConfig(), productmocks.NewProductRepository(t), bookingmocks.NewBookingRepository(t), fixedNow)

			got, err := app.LatePenalty(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LatePenalty() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.LateDays != tt.wantDays {
				t.Fatalf("LatePenalty() late days = %d, want %d", got.LateDays, tt.wantDays)
			}
			if !got.Penalty.Equal(dec(tt.wantPen)) {
				t.Fatalf("LatePenalty() penalty = %s, want %s", got.Penalty, tt.wantPen)
			}
		})
	}
}
