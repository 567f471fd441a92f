package form

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-catalog/internal/shared/dates"
)

// Pipeline is an ordered set of field rules. It is immutable once built and
// safe to share between requests.
type Pipeline struct {
	fields []Field
}

// NewPipeline builds a pipeline that evaluates fields in the given order.
func NewPipeline(fields ...Field) *Pipeline {
	return &Pipeline{fields: fields}
}

// Fields returns the field names in evaluation order.
func (p *Pipeline) Fields() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.Name
	}
	return names
}

// Run sanitizes and validates input. Fields missing from input are treated as
// empty. It never fails; problems are reported through Result.Errors.
func (p *Pipeline) Run(input map[string]string) *Result {
	res := &Result{
		order:  p.Fields(),
		values: make(map[string]string, len(p.fields)),
		dates:  make(map[string]time.Time),
		ids:    make(map[string]uuid.UUID),
	}

	for _, f := range p.fields {
		value := input[f.Name]
		if f.Rule.Trim {
			value = strings.TrimSpace(value)
		}

		if f.Rule.OptionalIfFalsy && value == "" {
			res.values[f.Name] = value
			continue
		}

		if err := validation.Validate(value, f.checks()...); err != nil {
			res.Errors = append(res.Errors, FieldError{Field: f.Name, Message: err.Error()})
		} else {
			switch f.Rule.ParseAs {
			case CalendarDate:
				if d, perr := dates.ParseCalendarDate(value); perr == nil {
					res.dates[f.Name] = d
				}
			case Identifier:
				if id, perr := uuid.Parse(value); perr == nil {
					res.ids[f.Name] = id
				}
			}
		}

		if f.Rule.Escape {
			value = Escape(value)
		}
		res.values[f.Name] = value
	}

	return res
}

// checks translates a Rule into ozzo-validation rules. Only the first failing
// rule is reported for a field.
func (f Field) checks() []validation.Rule {
	var rules []validation.Rule

	if f.Rule.RequireNonEmpty {
		required := validation.Required
		if f.Message != "" {
			required = required.Error(f.Message)
		}
		rules = append(rules, required)
	}
	if f.Rule.MaxLength > 0 {
		rules = append(rules, validation.By(storedLength(f.Rule)))
	}
	if len(f.Rule.OneOf) > 0 {
		allowed := make([]interface{}, len(f.Rule.OneOf))
		for i, v := range f.Rule.OneOf {
			allowed[i] = v
		}
		in := validation.In(allowed...)
		if f.Message != "" {
			in = in.Error(f.Message)
		}
		rules = append(rules, in)
	}

	switch f.Rule.ParseAs {
	case CalendarDate:
		rules = append(rules, validation.By(calendarDate(f.Message)))
	case Identifier:
		id := is.UUID
		if f.Message != "" {
			id = id.Error(f.Message)
		}
		rules = append(rules, id)
	}

	return rules
}

// storedLength bounds the value as it will be stored, so escaping cannot push
// an accepted value past the limit.
func storedLength(r Rule) validation.RuleFunc {
	limit := validation.RuneLength(0, r.MaxLength)
	return func(value interface{}) error {
		s, _ := value.(string)
		if r.Escape {
			s = Escape(s)
		}
		return limit.Validate(s)
	}
}

func calendarDate(message string) validation.RuleFunc {
	if message == "" {
		message = "must be a valid date"
	}
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := dates.ParseCalendarDate(s); err != nil {
			return errors.New(message)
		}
		return nil
	}
}
