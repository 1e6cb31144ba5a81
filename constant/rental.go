package constant

const (
	MinRentalDays = 1
	MaxRentalDays = 30

	// Tier thresholds for flat rental pricing. Crossing a threshold switches
	// the whole rental to that tier's flat rate.
	ThreeDayTierThreshold = 3
	SevenDayTierThreshold = 7

	DefaultPenaltyMultiplier = 2
)

// RentalDateErrorKind identifies why a rental date range was rejected.
// These are user-correctable validation outcomes, not errors.
type RentalDateErrorKind string

const (
	RentalDateMissing       RentalDateErrorKind = "MissingDate"
	RentalDatePastStart     RentalDateErrorKind = "PastStartDate"
	RentalDateEndBeforeStart RentalDateErrorKind = "EndBeforeStart"
	RentalDateBelowMinimum  RentalDateErrorKind = "BelowMinimumDuration"
	RentalDateAboveMaximum  RentalDateErrorKind = "AboveMaximumDuration"
	RentalDateUnavailable   RentalDateErrorKind = "DateUnavailable"
)

// DateLayout is the wire format for calendar dates; no time component.
const DateLayout = "2006-01-02"
