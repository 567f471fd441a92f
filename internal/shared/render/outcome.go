// Package render describes what a workflow step produced: a named view with
// its payload, or a redirect to another catalog location.
package render

// Outcome is the result of a lifecycle operation handed to the HTTP layer.
// Exactly one of View or Redirect is set.
type Outcome struct {
	View     string
	Data     any
	Redirect string
}

// View returns an outcome that renders the named view with data. Every value
// the view needs must already be formatted.
func View(name string, data any) Outcome {
	return Outcome{View: name, Data: data}
}

// RedirectTo returns an outcome that sends the client to path.
func RedirectTo(path string) Outcome {
	return Outcome{Redirect: path}
}

// IsRedirect reports whether the outcome is a redirect.
func (o Outcome) IsRedirect() bool {
	return o.Redirect != ""
}
