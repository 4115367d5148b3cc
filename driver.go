package pgcompose

import (
	"fmt"
	"strings"
)

// keywordList joins column names with ", ", preserving order.
func keywordList(columns []string) string {
	return strings.Join(columns, ", ")
}

func selectionColumns(sels Selections) []string {
	cols := make([]string, len(sels))
	for i, s := range sels {
		cols[i] = s.Column
	}
	return cols
}

func assignmentColumns(as Assignments) []string {
	cols := make([]string, len(as))
	for i, a := range as {
		cols[i] = a.Column
	}
	return cols
}

// assignmentList renders "col = $n" for every assignment, numbering from
// offset. Assignments always occupy contiguous placeholders.
func assignmentList(as Assignments, offset int) string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = fmt.Sprintf("%s = %s", a.Column, placeholder(offset+i))
	}
	return strings.Join(parts, ", ")
}

// conditionList renders the conditions joined by AND, threading a single
// placeholder counter through their predicates. It returns the index that
// follows the last placeholder rendered.
func conditionList(cs Conditions, offset int) (string, int) {
	parts := make([]string, len(cs))
	for i, c := range cs {
		var text string
		text, offset = c.Predicate.Placeholder(offset)
		parts[i] = c.Column + " " + text
	}
	return strings.Join(parts, " AND "), offset
}

func orderList(os Orders) string {
	parts := make([]string, len(os))
	for i, o := range os {
		parts[i] = o.Column + " " + o.Dir.String()
	}
	return strings.Join(parts, ", ")
}

// placeholders renders n comma separated placeholders starting at offset.
func placeholders(offset, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = placeholder(offset + i)
	}
	return strings.Join(parts, ", ")
}

// conditionValues appends the operands of every condition to args in the
// order conditionList renders their placeholders.
func conditionValues(args []any, cs Conditions) []any {
	for _, c := range cs {
		for v := range c.Predicate.Values() {
			args = append(args, v)
		}
	}
	return args
}

func formatArg(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("%q", val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
