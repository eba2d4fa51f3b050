package charts

import (
	"fmt"
)

// InvalidValueError is returned when a number was required but the record
// holds something else.
type InvalidValueError struct {
	Field string
	Value Value
}

func (e InvalidValueError) Error() string {
	if e.Value.Kind() == KindNone {
		return fmt.Sprintf("%s: missing numeric value", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value.String())
}

type DomainError struct {
	Value   string
	Message string
}

func (e DomainError) Error() string {
	if e.Value == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Value, e.Message)
}

type NotLoadedError struct {
	Chart string
}

func (e NotLoadedError) Error() string {
	return fmt.Sprintf("chart %s: data not loaded", e.Chart)
}

// DuplicateRenderError is returned when a chart is rendered onto a surface
// that already holds primitives. The surface has to be cleared first.
type DuplicateRenderError struct {
	Chart string
}

func (e DuplicateRenderError) Error() string {
	return fmt.Sprintf("chart %s: surface already rendered, clear it first", e.Chart)
}
