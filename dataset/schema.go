package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/tabcharts"
)

var ErrSchema = errors.New("invalid schema")

// Column binds a header of the source table to a field of the records.
type Column struct {
	Field  string
	Header string
	Kind   charts.Kind
}

func TextColumn(field, header string) Column {
	return Column{
		Field:  field,
		Header: header,
		Kind:   charts.KindText,
	}
}

func NumberColumn(field, header string) Column {
	return Column{
		Field:  field,
		Header: header,
		Kind:   charts.KindNumber,
	}
}

type Schema struct {
	Name    string
	Columns []Column
}

func (s Schema) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrSchema)
	}
	seen := make(map[string]struct{})
	for _, c := range s.Columns {
		if c.Field == "" || c.Header == "" {
			return fmt.Errorf("%w: column without field or header", ErrSchema)
		}
		if c.Kind != charts.KindText && c.Kind != charts.KindNumber {
			return fmt.Errorf("%w: %s: unsupported kind %s", ErrSchema, c.Field, c.Kind)
		}
		if _, ok := seen[c.Field]; ok {
			return fmt.Errorf("%w: %s: duplicate field", ErrSchema, c.Field)
		}
		seen[c.Field] = struct{}{}
	}
	return nil
}

func (s Schema) Column(field string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// Check reports an error if field is not declared by the schema or is not of
// the given kind.
func (s Schema) Check(field string, kind charts.Kind) error {
	c, ok := s.Column(field)
	if !ok {
		return fmt.Errorf("%s: field not defined in schema %s", field, s.Name)
	}
	if kind != charts.KindNone && c.Kind != kind {
		return fmt.Errorf("%s: %s field expected, got %s", field, kind, c.Kind)
	}
	return nil
}

var Students = Schema{
	Name: "students",
	Columns: []Column{
		TextColumn("gender", "gender"),
		TextColumn("race", "race/ethnicity"),
		TextColumn("education", "parental level of education"),
		TextColumn("lunch", "lunch"),
		TextColumn("preparation", "test preparation course"),
		NumberColumn("math", "math score"),
		NumberColumn("reading", "reading score"),
		NumberColumn("writing", "writing score"),
	},
}

var Superstore = Schema{
	Name: "superstore",
	Columns: []Column{
		TextColumn("category", "Sub-Category"),
		NumberColumn("sales", "Sales"),
		NumberColumn("profit", "Profit"),
		TextColumn("region", "Region"),
		NumberColumn("quantity", "Quantity"),
	},
}

func Preset(name string) (Schema, error) {
	switch strings.ToLower(name) {
	case Students.Name:
		return Students, nil
	case Superstore.Name:
		return Superstore, nil
	default:
		return Schema{}, fmt.Errorf("%s: unknown dataset preset", name)
	}
}
