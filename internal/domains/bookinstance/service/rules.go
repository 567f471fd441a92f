package service

import (
	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/shared/form"
)

const (
	fieldBook    = "book"
	fieldImprint = "imprint"
	fieldStatus  = "status"
	fieldDueBack = "due_back"

	msgBookNotFound = "Book not found"
)

// A blank status on create falls back to model.DefaultStatus; update requires one.
var createRules = form.NewPipeline(
	form.Field{Name: fieldBook, Message: "Book must be specified",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, ParseAs: form.Identifier, Escape: true}},
	form.Field{Name: fieldImprint, Message: "Imprint must be specified",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, Escape: true}},
	form.Field{Name: fieldStatus, Message: "Invalid status",
		Rule: form.Rule{Escape: true, OptionalIfFalsy: true, OneOf: model.StatusValues()}},
	form.Field{Name: fieldDueBack, Message: "Invalid date",
		Rule: form.Rule{OptionalIfFalsy: true, ParseAs: form.CalendarDate}},
)

var updateRules = form.NewPipeline(
	form.Field{Name: fieldBook, Message: "Book must not be empty",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, ParseAs: form.Identifier, Escape: true}},
	form.Field{Name: fieldImprint, Message: "Imprint must not be empty",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, Escape: true}},
	form.Field{Name: fieldDueBack, Message: "Invalid date",
		Rule: form.Rule{OptionalIfFalsy: true, ParseAs: form.CalendarDate}},
	form.Field{Name: fieldStatus, Message: "Status must not be empty",
		Rule: form.Rule{Trim: true, RequireNonEmpty: true, OneOf: model.StatusValues(), Escape: true}},
)
