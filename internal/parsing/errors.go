package parsing

import "fmt"

// ParseError represents a completion that is not valid JSON
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ShapeError represents valid JSON with the wrong top-level shape
// (for example an object where an array was requested)
type ShapeError struct {
	Expected string
	Got      string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: expected %s, got %s", e.Expected, e.Got)
}
