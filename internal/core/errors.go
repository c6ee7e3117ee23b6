package core

import "fmt"

// ValidationError reports a save invoked without a usable draft.
// Callers recover locally; the catalog is untouched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Msg)
}

// NotFoundError reports an update targeting a product id that is not in
// the catalog. The write is rejected rather than silently dropped.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ID)
}
