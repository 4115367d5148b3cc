package engine

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/guadalsistema/pgcompose"
)

// noopResult is returned for statements that were not sent to the database.
type noopResult struct{}

func (noopResult) LastInsertId() (int64, error) { return 0, nil }
func (noopResult) RowsAffected() (int64, error) { return 0, nil }

// Exec builds stmt and runs it through q. Statements that render as a no-op
// are not sent to the database; Exec returns a result reporting zero rows.
func Exec(ctx context.Context, q Querier, stmt pgcompose.Statement) (sql.Result, error) {
	query := stmt.Build()
	if query.Noop {
		traceNoop(q, query)
		return noopResult{}, nil
	}
	return q.ExecContext(ctx, query.SQL, query.Args...)
}

// All builds stmt, runs it through q and scans every returned row into a T.
//
// Structs (and pointers to structs) are filled column by column using their
// `db` tags; any other T receives the first column. A no-op statement yields
// no rows.
func All[T any](ctx context.Context, q Querier, stmt pgcompose.Statement) ([]T, error) {
	query := stmt.Build()
	if query.Noop {
		traceNoop(q, query)
		return nil, nil
	}

	rows, err := q.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll[T](rows)
}

// One is like All but requires exactly one row. It returns sql.ErrNoRows when
// nothing matched, ErrMultipleRows when more than one row came back and
// ErrNoopStatement for a no-op statement.
func One[T any](ctx context.Context, q Querier, stmt pgcompose.Statement) (T, error) {
	var zero T
	query := stmt.Build()
	if query.Noop {
		traceNoop(q, query)
		return zero, ErrNoopStatement
	}

	rows, err := q.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	return scanOne[T](rows)
}

func traceNoop(q Querier, query pgcompose.Query) {
	lq, ok := q.(interface{ logger() *slog.Logger })
	if !ok {
		return
	}
	if logger := lq.logger(); logger != nil {
		logger.Debug("pgcompose: skipping no-op statement", "sql", query.SQL)
	}
}
