package pgcompose

import (
	"reflect"
	"strings"

	"github.com/kisielk/sqlstruct"
)

// builder carries the state shared by the four statement builders.
type builder struct {
	kind  string
	table string
	built bool
}

// open panics if the builder has already been rendered.
func (b *builder) open() {
	if b.built {
		panic(NewErrBuilderConsumed(b.kind, b.table))
	}
}

// consume marks the builder as rendered.
func (b *builder) consume() {
	b.open()
	b.built = true
}

// modelFields walks the exported fields of typ in declaration order and
// reports their column names. Fields tagged "-" are skipped. The tag, or the
// field name when untagged, goes through sqlstruct.NameMapper and is lower
// cased, which is the name sqlstruct.Scan matches columns against. Embedded
// structs are inlined.
func modelFields(typ reflect.Type, fn func(column string, index []int)) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get(sqlstruct.TagName)
		if tag == "-" {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			modelFields(f.Type, func(column string, index []int) {
				fn(column, append([]int{i}, index...))
			})
			continue
		}
		name := tag
		if name == "" {
			name = f.Name
		}
		fn(strings.ToLower(sqlstruct.NameMapper(name)), []int{i})
	}
}

func fieldFilter(fields []string) map[string]struct{} {
	if len(fields) == 0 {
		return nil
	}
	filter := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		filter[f] = struct{}{}
	}
	return filter
}

// AssignmentsOf maps the exported fields of model to Assignments, in field
// declaration order.
//
// Column names come from the `db` struct tag, or the field name without one,
// converted to snake_case: `db:"userId"` names the column user_id. When
// fields is non-empty only the named columns are kept, which is how
// auto-generated columns such as an id are left out of an INSERT. model may be
// a struct or a pointer to one.
func AssignmentsOf(model any, fields ...string) (Assignments, error) {
	val := reflect.ValueOf(model)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, NewErrUnsupportedModel("nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, NewErrUnsupportedModel(val.Kind().String())
	}

	filter := fieldFilter(fields)
	var out Assignments
	modelFields(val.Type(), func(column string, index []int) {
		if filter != nil {
			if _, ok := filter[column]; !ok {
				return
			}
		}
		out = append(out, Assignment{Column: column, Value: val.FieldByIndex(index).Interface()})
	})
	return out, nil
}

// SelectionsOf lists the columns of struct type T, following the same naming
// rules as AssignmentsOf. It returns nil when T is not a struct.
func SelectionsOf[T any](fields ...string) Selections {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	filter := fieldFilter(fields)
	var out Selections
	modelFields(typ, func(column string, _ []int) {
		if filter != nil {
			if _, ok := filter[column]; !ok {
				return
			}
		}
		out = append(out, Selection{Column: column})
	})
	return out
}
