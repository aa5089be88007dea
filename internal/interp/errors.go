package interp

import "fmt"

// RuntimeError reports a failure that cannot be recovered within the
// language: evaluating an error-typed subtree, reading an undefined
// variable, integer division by zero, or a type mismatch that slipped past
// validation. Execution stops, but any output already written is preserved.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func fatalf(format string, args ...any) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...)})
}
