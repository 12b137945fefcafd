package rest

import (
	"errors"
	"fmt"
)

// ErrConnection marks network-level failures reaching the node.
var ErrConnection = errors.New("rest: cannot reach node")

// StatusError reports a non-success HTTP status from the node.
type StatusError struct {
	Operation string
	Code      int
	Body      string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("rest: %s returned status %d", e.Operation, e.Code)
	}
	return fmt.Sprintf("rest: %s returned status %d: %s", e.Operation, e.Code, e.Body)
}
