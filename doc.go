// Package pgcompose builds parameterized PostgreSQL statements.
//
// A statement is started for a table with NewSelect, NewInsert, NewUpdate or
// NewDelete, given fragments (conditions, assignments, selected columns,
// orders, limit and offset) and rendered once with Build. The resulting Query
// holds SQL text using $1, $2, ... placeholders and the values to bind, in
// placeholder order:
//
//	q := pgcompose.NewUpdate("users").
//		Set(pgcompose.Set("name", "Skyler"), pgcompose.Set("age", 23)).
//		Where(pgcompose.Where("id", pgcompose.Eq(1))).
//		Returning(pgcompose.Columns("id")...).
//		Build()
//
//	// q.SQL:  UPDATE users SET name = $1, age = $2 WHERE id = $3 RETURNING id;
//	// q.Args: ["Skyler", 23, 1]
//
// Table and column names are written verbatim. Pass untrusted identifiers
// through Escape first.
//
// Building a statement never touches a database. The engine subpackage is an
// optional execution layer on top: it runs statements against a database/sql
// handle, manages transactions and scans rows. Nothing in this package depends
// on it.
package pgcompose
