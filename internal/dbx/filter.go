package dbx

import (
	"fmt"
	"strings"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ListQuery accumulates a base SELECT plus optional predicates and produces a
// single parameterized query string with an ordered bind-value list.
//
// Every caller-supplied value is bound as a positional parameter ($1, $2, ...)
// and never concatenated into the query text. Predicates are appended in call
// order; parameter numbering stays contiguous regardless of which predicates
// are present, because the text fragment and its bind values are appended in
// the same single pass.
type ListQuery struct {
	sb   strings.Builder
	args []any
}

// NewListQuery starts a query from the given base statement, e.g.
// "SELECT * FROM cases WHERE deleted_at IS NULL".
func NewListQuery(base string) *ListQuery {
	q := &ListQuery{}
	q.sb.WriteString(base)
	return q
}

// Equal appends "AND <expr> = $n" binding value at the next parameter index.
// expr is a column expression chosen by the repository, never caller input.
func (q *ListQuery) Equal(expr string, value any) *ListQuery {
	q.args = append(q.args, value)
	fmt.Fprintf(&q.sb, " AND %s = $%d", expr, len(q.args))
	return q
}

// Search appends a case-insensitive substring match over two columns:
// "AND (<colA> ILIKE $n OR <colB> ILIKE $n+1)". The same wildcarded term
// is bound twice so the two placeholders stay independent.
func (q *ListQuery) Search(colA, colB, term string) *ListQuery {
	pattern := "%" + term + "%"
	q.args = append(q.args, pattern, pattern)
	fmt.Fprintf(&q.sb, " AND (%s ILIKE $%d OR %s ILIKE $%d)", colA, len(q.args)-1, colB, len(q.args))
	return q
}

// OrderBy appends a literal ORDER BY clause. The clause is repository-owned
// text and carries no bind values.
func (q *ListQuery) OrderBy(clause string) *ListQuery {
	q.sb.WriteString(" ORDER BY ")
	q.sb.WriteString(clause)
	return q
}

// Paginate appends "LIMIT $n OFFSET $n+1". It must be called last; invalid
// inputs are clamped rather than rejected: page is forced to at least 1 and
// perPage to the [1, 100] range (0 selects the default page size).
func (q *ListQuery) Paginate(page, perPage int) *ListQuery {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	q.args = append(q.args, perPage, (page-1)*perPage)
	fmt.Fprintf(&q.sb, " LIMIT $%d OFFSET $%d", len(q.args)-1, len(q.args))
	return q
}

// Build returns the assembled query text and the bind values in placeholder
// order.
func (q *ListQuery) Build() (string, []any) {
	return q.sb.String(), q.args
}
