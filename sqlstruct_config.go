package pgcompose

import "github.com/kisielk/sqlstruct"

// The init function configures sqlstruct so that struct fields map to columns
// through the "db" tag, falling back to the snake_case field name. The same
// rules drive AssignmentsOf, SelectionsOf and row scanning in the engine.
func init() {
	sqlstruct.TagName = "db"
	sqlstruct.NameMapper = sqlstruct.ToSnakeCase
}
