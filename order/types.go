package main

// Result codes of the catalog Order operation. Buy returns the
// negative ones in place of an order number, unchanged, so the front
// end sees the catalog's verdict directly.
const (
	OrderSuccess           int32 = 1
	OrderInsufficientStock int32 = -1
	OrderInvalidQuantity   int32 = -2
	OrderUnknownProduct    int32 = -3
)

// Record is one committed purchase in the replicated order log.
type Record struct {
	ProductName string
	Quantity    int32
}

// LogEntry pairs an order number with its record for one append to the
// durable log file.
type LogEntry struct {
	OrderNumber int32
	ProductName string
	Quantity    int32
}
