package pgcompose

import "strings"

// noopSQL is rendered by an Update that has nothing to set.
const noopSQL = "NULL;"

// Update builds an UPDATE statement.
type Update struct {
	builder
	assignments Assignments
	conditions  Conditions
	selections  Selections
}

// NewUpdate starts an UPDATE of table. The name is inserted verbatim; see Escape.
func NewUpdate(table string) *Update {
	return &Update{builder: builder{kind: "UPDATE", table: table}}
}

// Set appends column assignments.
func (b *Update) Set(assignments ...Assignment) *Update {
	b.open()
	b.assignments = append(b.assignments, assignments...)
	return b
}

// Where appends conditions; all of them must hold.
func (b *Update) Where(conds ...Condition) *Update {
	b.open()
	b.conditions = append(b.conditions, conds...)
	return b
}

// Returning appends columns to the RETURNING clause.
func (b *Update) Returning(sels ...Selection) *Update {
	b.open()
	b.selections = append(b.selections, sels...)
	return b
}

// Build renders the statement. Assignments take $1..$n and condition
// placeholders continue from $n+1.
//
// An Update without assignments has nothing to do: Build returns a Query with
// Noop set, SQL "NULL;" and no args, and any conditions or returned columns
// are dropped.
func (b *Update) Build() Query {
	b.consume()

	if len(b.assignments) == 0 {
		return Query{SQL: noopSQL, Args: []any{}, Noop: true}
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(b.table)
	sql.WriteString(" SET ")
	sql.WriteString(assignmentList(b.assignments, 1))

	if len(b.conditions) > 0 {
		where, _ := conditionList(b.conditions, len(b.assignments)+1)
		sql.WriteString(" WHERE ")
		sql.WriteString(where)
	}

	if len(b.selections) > 0 {
		sql.WriteString(" RETURNING ")
		sql.WriteString(keywordList(selectionColumns(b.selections)))
	}

	sql.WriteString(";")

	args := make([]any, 0, len(b.assignments))
	for _, a := range b.assignments {
		args = append(args, a.Value)
	}
	return Query{SQL: sql.String(), Args: conditionValues(args, b.conditions)}
}
