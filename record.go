package charts

import (
	"context"
	"math"
	"strconv"
)

type Kind int

const (
	KindNone Kind = iota
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "none"
	}
}

// Value is a single cell of a table: either a string or a number.
type Value struct {
	kind Kind
	str  string
	num  float64
}

func Text(str string) Value {
	return Value{
		kind: KindText,
		str:  str,
	}
}

func Number(f float64) Value {
	return Value{
		kind: KindNumber,
		num:  f,
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber || math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return 0, false
	}
	return v.num, true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	default:
		return ""
	}
}

// Record is one row of a loaded table. It can not be modified once created.
type Record struct {
	values map[string]Value
}

func NewRecord(values map[string]Value) Record {
	r := Record{
		values: make(map[string]Value, len(values)),
	}
	for k, v := range values {
		r.values[k] = v
	}
	return r
}

func (r Record) Get(field string) (Value, bool) {
	v, ok := r.values[field]
	return v, ok
}

func (r Record) Len() int {
	return len(r.values)
}

// Text returns the string form of field. Numbers are formatted, missing
// fields give the empty string.
func (r Record) Text(field string) string {
	return r.values[field].String()
}

func (r Record) Number(field string) (float64, error) {
	v := r.values[field]
	f, ok := v.Float()
	if !ok {
		return 0, InvalidValueError{
			Field: field,
			Value: v,
		}
	}
	return f, nil
}

type KeyFunc[T any] func(T) string

type ValueFunc[T any] func(T) (float64, error)

func TextField(field string) KeyFunc[Record] {
	return func(r Record) string {
		return r.Text(field)
	}
}

func NumberField(field string) ValueFunc[Record] {
	return func(r Record) (float64, error) {
		return r.Number(field)
	}
}

// TableLoader yields the typed rows of a table. Column names and coercion
// rules are fixed by the loader.
type TableLoader interface {
	Load(ctx context.Context, path string) ([]Record, error)
}
