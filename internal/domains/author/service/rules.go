package service

import (
	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/shared/form"
)

const (
	fieldFirstName   = "first_name"
	fieldFamilyName  = "family_name"
	fieldDateOfBirth = "date_of_birth"
	fieldDateOfDeath = "date_of_death"
)

var authorRules = form.NewPipeline(
	form.Field{Name: fieldFirstName, Message: "First name must be specified.",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, MaxLength: model.MaxNameLength, Escape: true}},
	form.Field{Name: fieldFamilyName, Message: "Family name must be specified.",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, MaxLength: model.MaxNameLength, Escape: true}},
	form.Field{Name: fieldDateOfBirth, Message: "Invalid date of birth",
		Rule: form.Rule{OptionalIfFalsy: true, ParseAs: form.CalendarDate}},
	form.Field{Name: fieldDateOfDeath, Message: "Invalid date of death",
		Rule: form.Rule{OptionalIfFalsy: true, ParseAs: form.CalendarDate}},
)
