package domain

import "time"

// Customer is a person that can place orders. Email is unique across customers.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// CustomerFilter narrows customer listings. Zero values are ignored.
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	PhonePrefix   string
}
