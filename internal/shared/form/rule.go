// Package form runs submitted form fields through an ordered list of typed
// sanitize/validate rules and reports per-field errors in declaration order.
package form

// Kind selects how a field value is interpreted after sanitizing.
type Kind int

const (
	PlainText Kind = iota
	CalendarDate
	Identifier
)

// Rule describes the checks applied to a single field.
// The zero Rule accepts any value unchanged.
type Rule struct {
	Trim            bool     // strip surrounding whitespace first
	Escape          bool     // HTML-escape the sanitized value
	RequireNonEmpty bool     // empty after trimming is an error
	OptionalIfFalsy bool     // empty value skips every remaining check
	MaxLength       int      // in runes, 0 means unbounded
	OneOf           []string // allowed values, nil means any
	ParseAs         Kind
}

// Field binds a rule to a form field name and the message reported when the
// field fails.
type Field struct {
	Name    string
	Message string
	Rule    Rule
}

// FieldError is a single user-correctable problem with a submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}
