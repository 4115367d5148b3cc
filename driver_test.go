package pgcompose

import "testing"

func TestKeywordList(t *testing.T) {
	if got := keywordList([]string{"id", "name", "age"}); got != "id, name, age" {
		t.Fatalf("unexpected keyword list: %s", got)
	}
	if got := keywordList(nil); got != "" {
		t.Fatalf("unexpected empty keyword list: %q", got)
	}
}

func TestAssignmentList(t *testing.T) {
	got := assignmentList(Assignments{Set("name", "x"), Set("age", 1)}, 3)
	if got != "name = $3, age = $4" {
		t.Fatalf("unexpected assignment list: %s", got)
	}
}

func TestConditionList(t *testing.T) {
	conds := Conditions{
		Where("id", Eq(1)),
		Where("tag", In("a", "b", "c")),
		Where("deleted_at", IsNull()),
		Where("age", Between(18, 65)),
	}
	got, next := conditionList(conds, 2)
	expected := "id = $2 AND tag IN ($3, $4, $5) AND deleted_at IS NULL AND age BETWEEN $6 AND $7"
	if got != expected {
		t.Fatalf("unexpected condition list: %s", got)
	}

	sum := 0
	for _, c := range conds {
		sum += c.Predicate.Arity()
	}
	if next != 2+sum {
		t.Fatalf("final index = %d; want %d", next, 2+sum)
	}
}

func TestOrderList(t *testing.T) {
	if got := orderList(Orders{OrderAsc("a"), OrderDesc("b")}); got != "a ASC, b DESC" {
		t.Fatalf("unexpected order list: %s", got)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1, 3); got != "$1, $2, $3" {
		t.Fatalf("unexpected placeholders: %s", got)
	}
	if got := placeholders(5, 0); got != "" {
		t.Fatalf("unexpected empty placeholders: %q", got)
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"users":      `"users"`,
		`we"ird`:     `"we""ird"`,
		`""`:         `""""""`,
		"Mixed Case": `"Mixed Case"`,
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Fatalf("Escape(%q)=%s; want %s", in, got, want)
		}
	}

	q := NewSelect(Escape("order")).Columns(Selection{Column: Escape("group")}).Build()
	if q.SQL != `SELECT "group" FROM "order";` {
		t.Fatalf("unexpected SQL: %s", q.SQL)
	}
}
