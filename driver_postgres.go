package pgcompose

import (
	"strconv"

	"github.com/lib/pq"
)

// placeholder renders the dollar-prefixed positional parameter $idx.
func placeholder(idx int) string { return "$" + strconv.Itoa(idx) }

// Escape quotes identifier for use as a table or column name, doubling any
// embedded double quote. Builders never escape names on their own; callers
// that accept untrusted identifiers should pass them through Escape first.
func Escape(identifier string) string {
	return pq.QuoteIdentifier(identifier)
}
