package engine

import (
	// Register the database/sql drivers selected by connection URLs:
	// "pgx" for postgres:// and postgresql+pgx://, "postgres" for
	// postgresql+pq:// and the psycopg2/pg8000 hints.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)
