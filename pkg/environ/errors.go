package environ

import "fmt"

// NotFoundError reports that none of the candidate keys are set in the
// environment.
type NotFoundError struct {
	Keys []string
}

func (e *NotFoundError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("the key %s was not found in the environment", e.Keys[0])
	}
	return fmt.Sprintf("none of the keys %v were found in the environment", e.Keys)
}

// ParseError reports a value that could not be converted to the requested
// type.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q from %s: %v", e.Value, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
