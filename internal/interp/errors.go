package interp

import "fmt"

// UsageError reports an invocation the interpreter cannot act on at
// all: no arguments, or a malformed flag. No network call has been
// made when one is returned.
type UsageError struct {
	Msg string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Msg
}

// NotFoundError reports a user-typed name that did not resolve to any
// entity on the service. Kind is "workspace", "project", or
// "assignee". No mutation has been performed when one is returned.
type NotFoundError struct {
	Kind string
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
