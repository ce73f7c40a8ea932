package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports which input fields failed a mutation's
// preconditions. The mutation is rejected before any state changes.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field(s): %s", strings.Join(e.Fields, ", "))
}
