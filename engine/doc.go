// Package engine runs pgcompose statements against a database/sql handle.
//
// It is an optional layer outside the builders: pgcompose only renders
// (SQL, args) pairs, while engine opens databases from connection URLs,
// manages transactions, traces statements with log/slog and scans rows into
// structs or scalars.
package engine
