package pgcompose

import "strings"

// Delete builds a DELETE statement.
type Delete struct {
	builder
	conditions Conditions
}

// NewDelete starts a DELETE from table. The name is inserted verbatim; see Escape.
func NewDelete(table string) *Delete {
	return &Delete{builder: builder{kind: "DELETE", table: table}}
}

// Where appends conditions; all of them must hold. Without conditions every
// row is deleted.
func (b *Delete) Where(conds ...Condition) *Delete {
	b.open()
	b.conditions = append(b.conditions, conds...)
	return b
}

// Build renders the statement. Condition placeholders start at $1.
func (b *Delete) Build() Query {
	b.consume()

	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		where, _ := conditionList(b.conditions, 1)
		sql.WriteString(" WHERE ")
		sql.WriteString(where)
	}

	sql.WriteString(";")

	return Query{SQL: sql.String(), Args: conditionValues(nil, b.conditions)}
}
