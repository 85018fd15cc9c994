package resolver

import "fmt"

// NotFoundError reports that no resource in the inventory carries the durable
// identifier. Expected and recoverable: the resource may have been deleted or
// renamed since evaluation. Callers match it with errors.As; it must stay
// distinguishable from every other error kind so the workflow can take the
// fallback branch instead of failing.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Identifier)
}
