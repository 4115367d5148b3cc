package pgcompose

import "fmt"

// ErrBuilderConsumed is the panic value raised when a builder is used after
// Build. Builders render exactly once; start a new one instead.
type ErrBuilderConsumed struct {
	Statement string
	Table     string
}

func (e *ErrBuilderConsumed) Error() string {
	return fmt.Sprintf("pgcompose: %s builder for %q was already built", e.Statement, e.Table)
}

// NewErrBuilderConsumed constructs a new ErrBuilderConsumed for the given statement kind and table.
func NewErrBuilderConsumed(statement, table string) error {
	return &ErrBuilderConsumed{Statement: statement, Table: table}
}

// ErrUnsupportedModel is returned when a value passed to AssignmentsOf is not a struct.
type ErrUnsupportedModel struct {
	Kind string
}

func (e *ErrUnsupportedModel) Error() string {
	return fmt.Sprintf("pgcompose: model of kind %s is not a struct", e.Kind)
}

// NewErrUnsupportedModel constructs a new ErrUnsupportedModel for the given kind.
func NewErrUnsupportedModel(kind string) error {
	return &ErrUnsupportedModel{Kind: kind}
}
