package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	ListBookedRanges(ctx context.Context, productID uint64) ([]model.BookedRange, error)
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const listBookedRangesQuery = `SELECT start_date, end_date FROM booking
WHERE product_id = ? AND status IN (?, ?) AND end_date >= CURDATE()
ORDER BY start_date`

// ListBookedRanges returns date ranges already held by confirmed or active
// bookings for the product. Pending and canceled bookings do not block dates.
func (s *SQL) ListBookedRanges(ctx context.Context, productID uint64) ([]model.BookedRange, error) {
	rows, err := s.conn.QueryxContext(ctx, listBookedRangesQuery,
		productID, constant.BookingStatusConfirmed, constant.BookingStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranges := make([]model.BookedRange, 0)
	for rows.Next() {
		var r model.BookedRange
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
