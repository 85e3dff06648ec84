package query

import "fmt"

// AnchorNotFoundError is returned when an expected structural anchor is
// missing or ambiguous, such as a file with zero or several top-level
// type declarations.
type AnchorNotFoundError struct {
	Anchor string
	Count  int
}

// Error implements the error interface.
func (e *AnchorNotFoundError) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("expected exactly one %s, found %d", e.Anchor, e.Count)
	}
	return fmt.Sprintf("no %s found", e.Anchor)
}
