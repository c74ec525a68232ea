package domain

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidPhone       = errors.New("invalid phone format")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidStock       = errors.New("stock cannot be negative")
	ErrInvalidCustomer    = errors.New("invalid customer id")
	ErrNoProductsSelected = errors.New("at least one product must be selected")
	ErrInvalidProductIDs  = errors.New("some product ids are invalid")
	ErrInvalidOrderBy     = errors.New("invalid order by field")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidID          = errors.New("invalid id")
)
