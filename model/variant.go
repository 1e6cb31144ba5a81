package model

import "time"

// VariantEntity represents the product_variant table entity. Stock is tracked
// at variant granularity (one size/color combination).
type VariantEntity struct {
	ID               uint64     `db:"id" json:"id"`
	ProductID        uint64     `db:"product_id" json:"product_id"`
	Size             string     `db:"size" json:"size"`
	Color            string     `db:"color" json:"color"`
	ColorCode        string     `db:"color_code" json:"color_code,omitempty"`
	SKUVariant       string     `db:"sku_variant" json:"sku_variant,omitempty"`
	StockQuantity    int64      `db:"stock_quantity" json:"stock_quantity"`
	ReservedQuantity int64      `db:"reserved_quantity" json:"reserved_quantity"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AvailableQuantity is stock not held against pending orders or rentals.
func (v *VariantEntity) AvailableQuantity() int64 {
	return v.StockQuantity - v.ReservedQuantity
}

func (v *VariantEntity) Snapshot() *StockSnapshot {
	return &StockSnapshot{
		ID:                v.ID,
		StockQuantity:     v.StockQuantity,
		ReservedQuantity:  v.ReservedQuantity,
		AvailableQuantity: v.AvailableQuantity(),
		IsActive:          v.IsActive,
	}
}

// StockSnapshot is returned from every stock mutation so callers never
// recompute availability themselves.
type StockSnapshot struct {
	ID                uint64 `json:"id"`
	StockQuantity     int64  `json:"stock_quantity"`
	ReservedQuantity  int64  `json:"reserved_quantity"`
	AvailableQuantity int64  `json:"available_quantity"`
	IsActive          bool   `json:"is_active"`
}

type CreateVariantRequest struct {
	ProductID    uint64 `json:"-"`
	Size         string `json:"size" validate:"required"`
	Color        string `json:"color" validate:"required"`
	ColorCode    string `json:"color_code"`
	SKUVariant   string `json:"sku_variant"`
	InitialStock int64  `json:"initial_stock" validate:"gte=0"`
}

// ReserveResult is the snapshot after a reserve plus the hold id the caller
// uses to confirm or cancel it. HoldID is empty when no expiration window is
// configured.
type ReserveResult struct {
	StockSnapshot
	HoldID string `json:"hold_id,omitempty"`
}

type StockMutationRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// VariantFilter for querying variants
type VariantFilter struct {
	ProductID       uint64
	IncludeInactive bool
}
