package dom

import "fmt"

// MalformedSelectorError is returned when a selector pattern cannot be parsed.
type MalformedSelectorError struct {
	Selector string
	Err      error
}

func (e *MalformedSelectorError) Error() string {
	return fmt.Sprintf("malformed selector %q: %v", e.Selector, e.Err)
}

func (e *MalformedSelectorError) Unwrap() error {
	return e.Err
}
