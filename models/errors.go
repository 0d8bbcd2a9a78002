package models

import "fmt"

// ValidationError reports malformed or out-of-range input. Always
// recoverable: the caller fixes the named field and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing Order, Lead, Vendor line or User.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// UnauthorizedRoleError reports a role outside the recognized set or a
// role without visibility into the requested record. Never downgraded to
// an empty result.
type UnauthorizedRoleError struct {
	Role string
}

func (e *UnauthorizedRoleError) Error() string {
	return fmt.Sprintf("role %q is not authorized", e.Role)
}
