package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order references one customer and a non-empty set of products by id.
// TotalAmount is fixed when the order is created.
type Order struct {
	ID          string
	CustomerID  string
	ProductIDs  []string
	TotalAmount decimal.Decimal
	OrderDate   time.Time
}

type OrderFilter struct {
	TotalMin      *decimal.Decimal
	TotalMax      *decimal.Decimal
	OrderedAfter  *time.Time
	OrderedBefore *time.Time
	CustomerName  string
	ProductName   string
	ProductID     string
}
