package engine

import (
	"context"
	"database/sql"
	"log/slog"
)

// Querier is the subset of *sql.DB, *sql.Tx and *Connection that Exec, All
// and One need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Connection represents a database connection/transaction context.
type Connection struct {
	engine *Engine
	db     *sql.DB
	ctx    context.Context
	tx     *sql.Tx
}

// Context returns the context the connection was opened with.
func (c *Connection) Context() context.Context {
	return c.ctx
}

// Begin starts a transaction on the connection.
func (c *Connection) Begin() error {
	if c.tx != nil {
		return ErrAlreadyInTransaction
	}
	tx, err := c.db.BeginTx(c.ctx, nil)
	if err != nil {
		return err
	}
	c.tx = tx
	return nil
}

// Commit commits the current transaction.
func (c *Connection) Commit() error {
	if c.tx == nil {
		return ErrNotInTransaction
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

// Rollback aborts the current transaction.
func (c *Connection) Rollback() error {
	if c.tx == nil {
		return ErrNotInTransaction
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}

// InTransaction returns true if the connection is in a transaction.
func (c *Connection) InTransaction() bool {
	return c.tx != nil
}

// Close rolls back a pending transaction, if any.
func (c *Connection) Close() error {
	if c.tx != nil {
		return c.Rollback()
	}
	return nil
}

// ExecContext runs a SQL statement with the provided context. A nil ctx
// falls back to the connection context.
func (c *Connection) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if ctx == nil {
		ctx = c.ctx
	}
	c.trace(query, args)
	if c.tx != nil {
		return c.tx.ExecContext(ctx, query, args...)
	}
	return c.db.ExecContext(ctx, query, args...)
}

// QueryContext runs a query that returns rows with the provided context. A
// nil ctx falls back to the connection context.
func (c *Connection) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if ctx == nil {
		ctx = c.ctx
	}
	c.trace(query, args)
	if c.tx != nil {
		return c.tx.QueryContext(ctx, query, args...)
	}
	return c.db.QueryContext(ctx, query, args...)
}

func (c *Connection) logger() *slog.Logger {
	if c.engine == nil {
		return nil
	}
	return c.engine.Logger()
}

func (c *Connection) trace(query string, args []any) {
	logger := c.logger()
	if logger == nil {
		return
	}
	logger.Debug("pgcompose: sql built", "sql", query, "args_len", len(args), "in_tx", c.tx != nil)
}
