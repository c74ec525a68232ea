package postgres

import (
	"fmt"
	"strings"

	"github.com/cimillas/crm-graphql/internal/domain"
)

// listQuery accumulates WHERE conditions with positional arguments.
type listQuery struct {
	conds []string
	args  []any
}

// where appends a condition; cond must contain a single %d for the argument position.
func (q *listQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, fmt.Sprintf(cond, len(q.args)))
}

func (q *listQuery) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return "\nWHERE " + strings.Join(q.conds, "\n  AND ")
}

// orderClause maps sort keys to columns and always ends with the id tiebreaker.
func orderClause(keys []domain.SortKey, columns map[string]string, defaults []domain.SortKey, idColumn string) (string, error) {
	if len(keys) == 0 {
		keys = defaults
	}
	terms := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		col, ok := columns[key.Field]
		if !ok {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidOrderBy, key.Field)
		}
		dir := "ASC"
		if key.Descending {
			dir = "DESC"
		}
		terms = append(terms, col+" "+dir)
	}
	terms = append(terms, idColumn+" ASC")
	return "\nORDER BY " + strings.Join(terms, ", "), nil
}

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func prefixPattern(s string) string {
	return escapeLike(s) + "%"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
