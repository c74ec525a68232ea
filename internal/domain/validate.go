package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// phonePattern accepts international numbers (optional +, 7-15 digits) or
// North-American dashed numbers (DDD-DDD-DDDD).
var phonePattern = regexp.MustCompile(`^(\+?\d{7,15}|\d{3}-\d{3}-\d{4})$`)

// ValidateRequired reports the first blank field among name and email.
func ValidateRequired(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	return nil
}

// ValidatePhone accepts an empty phone.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// MaxPrice is the largest price the products.price NUMERIC(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// ValidatePrice requires 0 < price <= MaxPrice.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() || price.GreaterThan(MaxPrice) {
		return ErrInvalidPrice
	}
	return nil
}

func ValidateStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
