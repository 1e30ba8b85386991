package api

import (
	"fmt"

	"github.com/alapierre/go-efris-client/efris/validate"
)

// ValidationError aborts a request before anything touches the network:
// the document violates its field rules and the server would reject it.
type ValidationError struct {
	InterfaceCode string
	Result        validate.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s document is invalid: %s", e.InterfaceCode, e.Result.Message())
}
