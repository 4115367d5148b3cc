package pgcompose

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// Operator identifies the comparison a Predicate performs.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreater
	OpGreaterOrEqual
	OpLess
	OpLessOrEqual
	OpIn
	OpBetween
	OpLike
	OpIsNull
	OpIsNotNull
)

// variadic marks an operator whose arity is the length of its operand list.
const variadic = -1

// operators is the arity table. Placeholder and Values both consult it, so the
// number of rendered placeholders and yielded values cannot drift apart.
var operators = [...]struct {
	symbol string
	arity  int
}{
	OpEqual:          {"=", 1},
	OpNotEqual:       {"<>", 1},
	OpGreater:        {">", 1},
	OpGreaterOrEqual: {">=", 1},
	OpLess:           {"<", 1},
	OpLessOrEqual:    {"<=", 1},
	OpIn:             {"IN", variadic},
	OpBetween:        {"BETWEEN", 2},
	OpLike:           {"LIKE", 1},
	OpIsNull:         {"IS NULL", 0},
	OpIsNotNull:      {"IS NOT NULL", 0},
}

// String returns the SQL keyword or symbol of the operator.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operators) {
		return "Operator(" + strconv.Itoa(int(o)) + ")"
	}
	return operators[o].symbol
}

// Predicate is an operator together with its bound operands, e.g. "= $1" or
// "BETWEEN $2 AND $3". Use the constructors below; the zero value is an
// equality against a nil operand.
type Predicate struct {
	op     Operator
	values []any
}

// Eq returns a predicate rendering "= $n".
func Eq(v any) Predicate { return Predicate{op: OpEqual, values: []any{v}} }

// NotEq returns a predicate rendering "<> $n".
func NotEq(v any) Predicate { return Predicate{op: OpNotEqual, values: []any{v}} }

// Gt returns a predicate rendering "> $n".
func Gt(v any) Predicate { return Predicate{op: OpGreater, values: []any{v}} }

// Gte returns a predicate rendering ">= $n".
func Gte(v any) Predicate { return Predicate{op: OpGreaterOrEqual, values: []any{v}} }

// Lt returns a predicate rendering "< $n".
func Lt(v any) Predicate { return Predicate{op: OpLess, values: []any{v}} }

// Lte returns a predicate rendering "<= $n".
func Lte(v any) Predicate { return Predicate{op: OpLessOrEqual, values: []any{v}} }

// Like returns a predicate rendering "LIKE $n".
func Like(pattern any) Predicate { return Predicate{op: OpLike, values: []any{pattern}} }

// In returns a membership predicate with one placeholder per value.
// An empty list renders "IN ()", which the server evaluates as false.
func In(vs ...any) Predicate {
	return Predicate{op: OpIn, values: slices.Clone(vs)}
}

// Between returns a predicate rendering "BETWEEN $n AND $n+1".
func Between(lo, hi any) Predicate {
	return Predicate{op: OpBetween, values: []any{lo, hi}}
}

// IsNull returns a predicate rendering "IS NULL".
func IsNull() Predicate { return Predicate{op: OpIsNull} }

// IsNotNull returns a predicate rendering "IS NOT NULL".
func IsNotNull() Predicate { return Predicate{op: OpIsNotNull} }

// Operator reports the comparison performed by p.
func (p Predicate) Operator() Operator { return p.op }

// Arity reports how many placeholders p renders and how many values it binds.
func (p Predicate) Arity() int {
	if n := operators[p.op].arity; n != variadic {
		return n
	}
	return len(p.values)
}

// Placeholder renders the operator and its placeholders starting at next and
// returns the index following the last placeholder consumed.
func (p Predicate) Placeholder(next int) (string, int) {
	symbol := operators[p.op].symbol
	n := p.Arity()
	switch p.op {
	case OpIn:
		return fmt.Sprintf("%s (%s)", symbol, placeholders(next, n)), next + n
	case OpBetween:
		return fmt.Sprintf("%s %s AND %s", symbol, placeholder(next), placeholder(next+1)), next + n
	}
	if n == 0 {
		return symbol, next
	}
	return symbol + " " + placeholder(next), next + n
}

// Values yields the operands of p in the order their placeholders are
// rendered by Placeholder.
func (p Predicate) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range p.Arity() {
			var v any
			if i < len(p.values) {
				v = p.values[i]
			}
			if !yield(v) {
				return
			}
		}
	}
}

// String renders p starting at placeholder $1.
func (p Predicate) String() string {
	s, _ := p.Placeholder(1)
	return s
}
