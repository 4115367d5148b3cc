package pgcompose_test

import (
	"fmt"

	"github.com/guadalsistema/pgcompose"
)

func ExampleNewSelect() {
	q := pgcompose.NewSelect("users").
		Columns(pgcompose.Columns("id", "email")...).
		Where(
			pgcompose.Where("status", pgcompose.In("active", "invited")),
			pgcompose.Where("deleted_at", pgcompose.IsNull()),
		).
		OrderBy(pgcompose.OrderDesc("created_at")).
		Limit(20).
		Offset(40).
		Build()

	fmt.Println(q.SQL)
	fmt.Println(q.Args)
	// Output:
	// SELECT id, email FROM users WHERE status IN ($1, $2) AND deleted_at IS NULL ORDER BY created_at DESC LIMIT 20 OFFSET 40;
	// [active invited]
}

func ExampleNewInsert() {
	type User struct {
		ID    int64  `db:"id"`
		Name  string `db:"name"`
		Email string `db:"email"`
	}

	values, err := pgcompose.AssignmentsOf(User{Name: "Ann", Email: "ann@example.com"}, "name", "email")
	if err != nil {
		panic(err)
	}
	q := pgcompose.NewInsert("users").Values(values...).Returning(pgcompose.Columns("id")...).Build()

	fmt.Println(q.SQL)
	fmt.Println(q.Args)
	// Output:
	// INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id;
	// [Ann ann@example.com]
}

func ExampleNewUpdate() {
	q := pgcompose.NewUpdate("users").
		Set(pgcompose.Set("name", "Skyler"), pgcompose.Set("age", 23)).
		Where(pgcompose.Where("id", pgcompose.Eq(1))).
		Returning(pgcompose.Columns("id")...).
		Build()

	fmt.Println(q)
	// Output:
	// UPDATE users SET name = $1, age = $2 WHERE id = $3 RETURNING id; [$1="Skyler", $2=23, $3=1]
}

func ExampleNewDelete() {
	q := pgcompose.NewDelete(pgcompose.Escape("user sessions")).
		Where(pgcompose.Where("expires_at", pgcompose.Between(0, 1700000000))).
		Build()

	fmt.Println(q.SQL)
	// Output:
	// DELETE FROM "user sessions" WHERE expires_at BETWEEN $1 AND $2;
}
