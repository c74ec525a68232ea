package graphql

import (
	"errors"

	"github.com/cimillas/crm-graphql/internal/domain"
)

const (
	codeMissingField       = "MISSING_FIELD"
	codeEmailTaken         = "EMAIL_TAKEN"
	codeInvalidPhone       = "INVALID_PHONE"
	codeInvalidPrice       = "INVALID_PRICE"
	codeInvalidStock       = "INVALID_STOCK"
	codeInvalidCustomer    = "INVALID_CUSTOMER"
	codeNoProductsSelected = "NO_PRODUCTS_SELECTED"
	codeInvalidProductIDs  = "INVALID_PRODUCT_IDS"
	codeInvalidOrderBy     = "INVALID_ORDER_BY"
	codeInternal           = "INTERNAL"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrMissingField, codeMissingField},
	{domain.ErrEmailTaken, codeEmailTaken},
	{domain.ErrInvalidPhone, codeInvalidPhone},
	{domain.ErrInvalidPrice, codeInvalidPrice},
	{domain.ErrInvalidStock, codeInvalidStock},
	{domain.ErrInvalidCustomer, codeInvalidCustomer},
	{domain.ErrNoProductsSelected, codeNoProductsSelected},
	{domain.ErrInvalidProductIDs, codeInvalidProductIDs},
	{domain.ErrInvalidOrderBy, codeInvalidOrderBy},
}

// resolverError is surfaced to clients with its code under "extensions".
type resolverError struct {
	code    string
	message string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// errorCode returns the client-facing code for err, or false for errors
// that must not leak.
func errorCode(err error) (string, bool) {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code, true
		}
	}
	return codeInternal, false
}
