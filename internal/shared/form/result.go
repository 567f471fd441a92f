package form

import (
	"time"

	"github.com/google/uuid"
)

// Result carries the sanitized value of every field in the pipeline together
// with any validation errors, in rule-declaration order.
type Result struct {
	order  []string
	values map[string]string
	dates  map[string]time.Time
	ids    map[string]uuid.UUID
	Errors []FieldError
}

// Valid reports whether every field passed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Value returns the sanitized value of a field, whether or not it passed.
func (r *Result) Value(field string) string {
	return r.values[field]
}

// Date returns the parsed calendar date of a CalendarDate field, or nil when
// the field was empty or failed to parse.
func (r *Result) Date(field string) *time.Time {
	d, ok := r.dates[field]
	if !ok {
		return nil
	}
	return &d
}

// ID returns the parsed identifier of an Identifier field, or uuid.Nil.
func (r *Result) ID(field string) uuid.UUID {
	return r.ids[field]
}

// ErrorFor returns the message reported for field, if any.
func (r *Result) ErrorFor(field string) (string, bool) {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// Reject records a failure found outside the pipeline, such as a reference to
// a record that does not exist. The error keeps its place in declaration order.
func (r *Result) Reject(field, message string) {
	rank := make(map[string]int, len(r.order))
	for i, name := range r.order {
		rank[name] = i
	}

	at := len(r.Errors)
	for i, e := range r.Errors {
		if rank[e.Field] > rank[field] {
			at = i
			break
		}
	}
	r.Errors = append(r.Errors, FieldError{})
	copy(r.Errors[at+1:], r.Errors[at:])
	r.Errors[at] = FieldError{Field: field, Message: message}
}
