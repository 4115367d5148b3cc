package pgcompose

import (
	"strconv"
	"strings"
)

// Dir is the sort direction of an Order.
type Dir int

const (
	Asc Dir = iota
	Desc
)

func (d Dir) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Assignment pairs a column with the value bound to it. Insert uses it for the
// values to insert and Update for the values to set.
type Assignment struct {
	Column string
	Value  any
}

type Assignments []Assignment

// Set returns an Assignment of v to column.
func Set(column string, v any) Assignment {
	return Assignment{Column: column, Value: v}
}

// Condition restricts a statement to rows where Column satisfies Predicate.
// Conditions attached to one builder are joined with AND.
type Condition struct {
	Column    string
	Predicate Predicate
}

type Conditions []Condition

// Where returns a Condition applying p to column.
func Where(column string, p Predicate) Condition {
	return Condition{Column: column, Predicate: p}
}

// Selection names a column to select or return.
type Selection struct {
	Column string
}

type Selections []Selection

// Columns returns one Selection per name, in order.
func Columns(names ...string) Selections {
	out := make(Selections, len(names))
	for i, n := range names {
		out[i] = Selection{Column: n}
	}
	return out
}

// Order sorts a SELECT by Column in direction Dir.
type Order struct {
	Column string
	Dir    Dir
}

type Orders []Order

// OrderAsc returns an ascending Order on column.
func OrderAsc(column string) Order { return Order{Column: column, Dir: Asc} }

// OrderDesc returns a descending Order on column.
func OrderDesc(column string) Order { return Order{Column: column, Dir: Desc} }

// Limit is inlined into the SQL text as a decimal integer.
type Limit uint64

func (l Limit) String() string { return strconv.FormatUint(uint64(l), 10) }

// Offset is inlined into the SQL text as a decimal integer.
type Offset uint64

func (o Offset) String() string { return strconv.FormatUint(uint64(o), 10) }

// Query is a rendered statement and the values bound to its placeholders:
// Args[k-1] binds $k.
//
// Noop is set when the builder had nothing to do (an Update without
// assignments). SQL is then the inert statement "NULL;" and Args is empty;
// callers may skip executing it.
type Query struct {
	SQL  string
	Args []any
	Noop bool
}

// Placeholders returns the number of bound values, which equals the number of
// distinct placeholders in SQL.
func (q Query) Placeholders() int { return len(q.Args) }

func (q Query) String() string {
	if len(q.Args) == 0 {
		return q.SQL
	}
	var b strings.Builder
	b.WriteString(q.SQL)
	b.WriteString(" [")
	for i, a := range q.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(placeholder(i + 1))
		b.WriteString("=")
		b.WriteString(formatArg(a))
	}
	b.WriteString("]")
	return b.String()
}

// Statement is implemented by the four builders.
type Statement interface {
	// Build renders the statement. A builder can be built only once.
	Build() Query
}
