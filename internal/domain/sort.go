package domain

import (
	"fmt"
	"strings"
)

// SortKey is one ordering term of a listing.
type SortKey struct {
	Field      string
	Descending bool
}

// Sortable fields per entity, keyed by their API name.
var (
	CustomerSortFields = []string{"name", "email", "phone", "createdAt"}
	ProductSortFields  = []string{"name", "price", "stock", "createdAt"}
	OrderSortFields    = []string{"orderDate", "totalAmount", "customerId"}
)

// ParseSortKeys turns entries like "name" or "-createdAt" into sort keys,
// rejecting fields outside allowed. Matching is case-insensitive and
// accepts snake_case spellings.
func ParseSortKeys(orderBy []string, allowed []string) ([]SortKey, error) {
	keys := make([]SortKey, 0, len(orderBy))
	for _, raw := range orderBy {
		term := strings.TrimSpace(raw)
		desc := false
		if strings.HasPrefix(term, "-") {
			desc = true
			term = strings.TrimPrefix(term, "-")
		}
		field, ok := matchField(term, allowed)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrderBy, raw)
		}
		keys = append(keys, SortKey{Field: field, Descending: desc})
	}
	return keys, nil
}

func matchField(term string, allowed []string) (string, bool) {
	normalized := strings.ReplaceAll(term, "_", "")
	if normalized == "" {
		return "", false
	}
	for _, field := range allowed {
		if strings.EqualFold(field, normalized) {
			return field, true
		}
	}
	return "", false
}
