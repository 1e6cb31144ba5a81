package model

import "github.com/shopspring/decimal"

// PricingKind tags a product as sold or rented. The two pricing shapes are
// kept on separate structs so rental math cannot be applied to a sale item.
type PricingKind string

const (
	PricingKindSale   PricingKind = "sale"
	PricingKindRental PricingKind = "rental"
)

type SalePricing struct {
	Price decimal.Decimal `json:"price"`
}

type RentalPricing struct {
	DailyRate       decimal.Decimal `json:"daily_rate"`
	TieredRates     TieredRates     `json:"tiered_rates"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}

type ProductDetail struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        PricingKind    `json:"kind"`
	Sale        *SalePricing   `json:"sale,omitempty"`
	Rental      *RentalPricing `json:"rental,omitempty"`
}
