// Package paths derives canonical catalog locations from record identity.
package paths

import "fmt"

// Root is the mount point of every catalog route.
const Root = "/catalog"

// Kind names an entity type as it appears in catalog paths.
type Kind string

const (
	Author       Kind = "author"
	Book         Kind = "book"
	BookInstance Kind = "bookinstance"
)

// For returns the canonical reference path of a single record,
// e.g. /catalog/bookinstance/{id}.
func For(kind Kind, id fmt.Stringer) string {
	return fmt.Sprintf("%s/%s/%s", Root, kind, id)
}

// List returns the listing path for an entity type, e.g. /catalog/bookinstances.
func List(kind Kind) string {
	return fmt.Sprintf("%s/%ss", Root, kind)
}
