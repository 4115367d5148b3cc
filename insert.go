package pgcompose

import "strings"

// Insert builds a single-row INSERT statement.
type Insert struct {
	builder
	assignments Assignments
	selections  Selections
}

// NewInsert starts an INSERT into table. The name is inserted verbatim; see Escape.
func NewInsert(table string) *Insert {
	return &Insert{builder: builder{kind: "INSERT", table: table}}
}

// Values appends column values. Columns are listed in the order they were
// added and bound to $1..$n.
func (b *Insert) Values(assignments ...Assignment) *Insert {
	b.open()
	b.assignments = append(b.assignments, assignments...)
	return b
}

// Returning appends columns to the RETURNING clause.
func (b *Insert) Returning(sels ...Selection) *Insert {
	b.open()
	b.selections = append(b.selections, sels...)
	return b
}

// Build renders the statement. Without values it renders
// "INSERT INTO table DEFAULT VALUES".
func (b *Insert) Build() Query {
	b.consume()

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(b.table)

	if len(b.assignments) == 0 {
		sql.WriteString(" DEFAULT VALUES")
	} else {
		sql.WriteString(" (")
		sql.WriteString(keywordList(assignmentColumns(b.assignments)))
		sql.WriteString(") VALUES (")
		sql.WriteString(placeholders(1, len(b.assignments)))
		sql.WriteString(")")
	}

	if len(b.selections) > 0 {
		sql.WriteString(" RETURNING ")
		sql.WriteString(keywordList(selectionColumns(b.selections)))
	}

	sql.WriteString(";")

	args := make([]any, len(b.assignments))
	for i, a := range b.assignments {
		args[i] = a.Value
	}
	return Query{SQL: sql.String(), Args: args}
}
