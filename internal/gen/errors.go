package gen

import "fmt"

// DuplicateMemberError is returned when a synthesized member would
// collide with one the type already declares.
type DuplicateMemberError struct {
	Member string
}

// Error implements the error interface.
func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("type already declares a member %q", e.Member)
}

// MissingIdentifierError is returned when repository synthesis cannot
// find an @Id field on the entity or its superclass.
type MissingIdentifierError struct {
	Entity string
}

// Error implements the error interface.
func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("entity %s declares no @Id field", e.Entity)
}
