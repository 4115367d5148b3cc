package engine

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/kisielk/sqlstruct"
)

var timeType = reflect.TypeOf(time.Time{})

// scanAll reads every row into a new T.
func scanAll[T any](rows *sql.Rows) ([]T, error) {
	var out []T
	for rows.Next() {
		var v T
		if err := scanRow(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanOne reads exactly one row, erroring on zero or multiple rows.
func scanOne[T any](rows *sql.Rows) (T, error) {
	var v T
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return v, err
		}
		return v, sql.ErrNoRows
	}

	if err := scanRow(rows, &v); err != nil {
		return v, err
	}

	if rows.Next() {
		return v, ErrMultipleRows
	}

	return v, rows.Err()
}

// scanRow routes scanning based on the destination type.
// Structs use sqlstruct to map columns; everything else, including
// sql.Scanner implementations and time.Time, falls back to rows.Scan.
func scanRow(rows *sql.Rows, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("pgcompose: scan destination must be a non-nil pointer, got %T", dest)
	}
	if _, ok := dest.(sql.Scanner); ok {
		return rows.Scan(dest)
	}

	elem := rv.Elem()
	if isModel(elem.Type()) {
		return sqlstruct.Scan(dest, rows)
	}

	if elem.Kind() == reflect.Pointer && isModel(elem.Type().Elem()) {
		// Allocate the pointed-to struct before scanning into it.
		if elem.IsNil() {
			elem.Set(reflect.New(elem.Type().Elem()))
		}
		return sqlstruct.Scan(elem.Interface(), rows)
	}

	return rows.Scan(dest)
}

func isModel(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}
	return !reflect.PointerTo(t).Implements(scannerType)
}

var scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
