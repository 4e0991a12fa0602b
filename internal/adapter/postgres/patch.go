package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// CompiledPatch is a parameterized SET clause. Values[i] binds to $i+1.
type CompiledPatch struct {
	SetClause string
	Values    []any
}

// NextPlaceholder returns the position of the first placeholder not used by
// the SET clause, for the statement's WHERE condition.
func (c CompiledPatch) NextPlaceholder() int {
	return len(c.Values) + 1
}

// Args returns the SET values followed by extra, ready to pass to Exec/QueryRow.
func (c CompiledPatch) Args(extra ...any) []any {
	args := make([]any, 0, len(c.Values)+len(extra))
	args = append(args, c.Values...)
	return append(args, extra...)
}

// CompilePatch turns patch into `"col"=$1, "col2"=$2` in field order.
// columns maps attribute names to column names; names without an entry are
// used as-is. Only column names reach the SQL text; values are always bound.
func CompilePatch(patch domain.Patch, columns map[string]string) (CompiledPatch, error) {
	if patch.IsEmpty() {
		return CompiledPatch{}, domain.ErrInvalidUpdate
	}

	fields := patch.Fields()
	fragments := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))

	for i, f := range fields {
		col, ok := columns[f.Name]
		if !ok {
			col = f.Name
		}
		fragments = append(fragments, fmt.Sprintf("%s=$%d", pgx.Identifier{col}.Sanitize(), i+1))
		values = append(values, f.Value)
	}

	return CompiledPatch{
		SetClause: strings.Join(fragments, ", "),
		Values:    values,
	}, nil
}
