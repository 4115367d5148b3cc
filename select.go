package pgcompose

import "strings"

// Select builds a SELECT statement over a single table.
//
//	q := pgcompose.NewSelect("users").
//		Columns(pgcompose.Columns("id", "name")...).
//		Where(pgcompose.Where("age", pgcompose.Gte(18))).
//		OrderBy(pgcompose.OrderDesc("created_at")).
//		Limit(20).
//		Build()
type Select struct {
	builder
	conditions Conditions
	selections Selections
	orders     Orders
	limit      *Limit
	offset     *Offset
}

// NewSelect starts a SELECT on table. The name is inserted verbatim; see Escape.
func NewSelect(table string) *Select {
	return &Select{builder: builder{kind: "SELECT", table: table}}
}

// Where appends conditions; all of them must hold.
func (b *Select) Where(conds ...Condition) *Select {
	b.open()
	b.conditions = append(b.conditions, conds...)
	return b
}

// Columns appends selected columns. Without any, the statement selects *.
func (b *Select) Columns(sels ...Selection) *Select {
	b.open()
	b.selections = append(b.selections, sels...)
	return b
}

// OrderBy appends sort keys.
func (b *Select) OrderBy(orders ...Order) *Select {
	b.open()
	b.orders = append(b.orders, orders...)
	return b
}

// Limit sets the LIMIT, replacing any previous one.
func (b *Select) Limit(n Limit) *Select {
	b.open()
	b.limit = &n
	return b
}

// Offset sets the OFFSET, replacing any previous one.
func (b *Select) Offset(n Offset) *Select {
	b.open()
	b.offset = &n
	return b
}

// Build renders the statement. Condition placeholders start at $1.
func (b *Select) Build() Query {
	b.consume()

	var sql strings.Builder
	sql.WriteString("SELECT ")
	if len(b.selections) > 0 {
		sql.WriteString(keywordList(selectionColumns(b.selections)))
	} else {
		sql.WriteString("*")
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		where, _ := conditionList(b.conditions, 1)
		sql.WriteString(" WHERE ")
		sql.WriteString(where)
	}

	if len(b.orders) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(orderList(b.orders))
	}

	if b.limit != nil {
		sql.WriteString(" LIMIT ")
		sql.WriteString(b.limit.String())
	}

	if b.offset != nil {
		sql.WriteString(" OFFSET ")
		sql.WriteString(b.offset.String())
	}

	sql.WriteString(";")

	return Query{SQL: sql.String(), Args: conditionValues(nil, b.conditions)}
}
