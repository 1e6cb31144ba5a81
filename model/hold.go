package model

// Hold records a stock reservation that has not been confirmed or cancelled
// yet. The record is the hold's pending state: once claimed (confirm, cancel,
// or expiry) the scheduled expiration finds nothing and leaves the ledger
// alone.
type Hold struct {
	HoldID    string `json:"hold_id"`
	VariantID uint64 `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}
