package main

import "github.com/shopspring/decimal"

// Result codes returned by the Order operation. Negative values travel
// unchanged through the order service to the front end.
const (
	OrderSuccess           int32 = 1
	OrderInsufficientStock int32 = -1
	OrderInvalidQuantity   int32 = -2
	OrderUnknownProduct    int32 = -3
)

// restockQuantity is the stock level a depleted product is raised to.
const restockQuantity int32 = 100

// Product is one row of the catalog. The set of products is fixed at
// startup; only Quantity changes afterwards.
type Product struct {
	Name     string
	Price    decimal.Decimal
	Quantity int32
}
