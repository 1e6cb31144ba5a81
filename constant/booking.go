package constant

type BookingStatus int

const (
	BookingStatusPending   BookingStatus = 1
	BookingStatusConfirmed BookingStatus = 2
	BookingStatusActive    BookingStatus = 3
	BookingStatusReturned  BookingStatus = 4
	BookingStatusCanceled  BookingStatus = 5
)
