package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-commerce/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const getProductQuery = `SELECT id, name, description, kind, price, daily_rate, three_day_rate, seven_day_rate, security_deposit
FROM product WHERE id = ?`

type productRow struct {
	ID              uint64              `db:"id"`
	Name            string              `db:"name"`
	Description     sql.NullString      `db:"description"`
	Kind            string              `db:"kind"`
	Price           decimal.NullDecimal `db:"price"`
	DailyRate       decimal.NullDecimal `db:"daily_rate"`
	ThreeDayRate    decimal.NullDecimal `db:"three_day_rate"`
	SevenDayRate    decimal.NullDecimal `db:"seven_day_rate"`
	SecurityDeposit decimal.NullDecimal `db:"security_deposit"`
}

// GetByID loads a product and builds the tagged pricing shape: sale products
// carry only sale pricing, rental products only rental pricing.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var row productRow
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	detail := &model.ProductDetail{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description.String,
		Kind:        model.PricingKind(row.Kind),
	}

	switch detail.Kind {
	case model.PricingKindSale:
		detail.Sale = &model.SalePricing{Price: row.Price.Decimal}
	case model.PricingKindRental:
		rental := &model.RentalPricing{
			DailyRate:       row.DailyRate.Decimal,
			SecurityDeposit: row.SecurityDeposit.Decimal,
		}
		if row.ThreeDayRate.Valid {
			rate := row.ThreeDayRate.Decimal
			rental.TieredRates.ThreeDay = &rate
		}
		if row.SevenDayRate.Valid {
			rate := row.SevenDayRate.Decimal
			rental.TieredRates.SevenDay = &rate
		}
		detail.Rental = rental
	}

	return detail, nil
}
