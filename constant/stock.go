package constant

// Stock ledger operation names carried on published stock events.
const (
	StockOperationReserve    = "reserve"
	StockOperationRelease    = "release"
	StockOperationAdd        = "add_stock"
	StockOperationReduce     = "reduce_stock"
	StockOperationSoftDelete = "soft_delete"
)
