package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. Price and Stock are checked only at creation.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
}

type ProductFilter struct {
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
}
