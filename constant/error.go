package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrVariantNotFound
	ErrVariantInactive
	ErrDuplicateVariant
	ErrInsufficientStock
	ErrOverRelease
	ErrInsufficientAvailableStock
	ErrProductNotRentable
	ErrHoldNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                    "success",
	ErrInternal:                   "error internal",
	ErrNotFound:                   "data not found",
	ErrInvalidRequest:             "invalid request",
	ErrUnauthorize:                "unauthorize request",
	ErrVariantNotFound:            "variant not found",
	ErrVariantInactive:            "variant is inactive",
	ErrDuplicateVariant:           "variant with same size and color already exists",
	ErrInsufficientStock:          "insufficient available stock",
	ErrOverRelease:                "release quantity exceeds reserved quantity",
	ErrInsufficientAvailableStock: "reduce quantity exceeds available stock",
	ErrProductNotRentable:         "product is not rentable",
	ErrHoldNotFound:               "hold not found or already settled",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                    http.StatusOK,
	ErrInternal:                   http.StatusInternalServerError,
	ErrNotFound:                   http.StatusNotFound,
	ErrInvalidRequest:             http.StatusBadRequest,
	ErrUnauthorize:                http.StatusUnauthorized,
	ErrVariantNotFound:            http.StatusNotFound,
	ErrVariantInactive:            http.StatusNotFound,
	ErrDuplicateVariant:           http.StatusConflict,
	ErrInsufficientStock:          http.StatusConflict,
	ErrOverRelease:                http.StatusConflict,
	ErrInsufficientAvailableStock: http.StatusConflict,
	ErrProductNotRentable:         http.StatusBadRequest,
	ErrHoldNotFound:               http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                    "0000",
	ErrInternal:                   "0001",
	ErrNotFound:                   "0002",
	ErrInvalidRequest:             "0003",
	ErrUnauthorize:                "0004",
	ErrVariantNotFound:            "0005",
	ErrVariantInactive:            "0006",
	ErrDuplicateVariant:           "0007",
	ErrInsufficientStock:          "0008",
	ErrOverRelease:                "0009",
	ErrInsufficientAvailableStock: "0010",
	ErrProductNotRentable:         "0011",
	ErrHoldNotFound:               "0012",
}
