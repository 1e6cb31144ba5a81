package model

import "time"

// BookedRange is one confirmed rental's date range for a product, inclusive of
// both endpoints. Quotes are product level, so any variant's confirmed booking
// blocks the dates. The booking workflow itself lives outside this service;
// only the blocked dates are read here.
type BookedRange struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}
