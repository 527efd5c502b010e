package domain

import "strings"

// UnresolvedReferenceMarker is the ModelSim diagnostic code reported when a
// referenced design unit cannot be found ("vcom-11").
//
// A result carrying this code is never trusted: the missing unit usually lives
// in a source that has not been compiled yet, so the same file must be retried
// on the next build even if it did not change. The match is an exact substring
// check on this code and nothing broader.
const UnresolvedReferenceMarker = "(vcom-11)"

// Diagnostics holds the compiler messages produced by one build of a source.
type Diagnostics struct {
	Errors   []string
	Warnings []string
}

// HasUnresolvedReference reports whether any error carries the unresolved reference marker.
func HasUnresolvedReference(errs []string) bool {
	for _, e := range errs {
		if strings.Contains(e, UnresolvedReferenceMarker) {
			return true
		}
	}
	return false
}
