package session

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRxMismatch blocks saving while the label and vial RX numbers disagree.
	ErrRxMismatch = errors.New("label and vial RX numbers do not match")
	// ErrNotAttested blocks saving until all three acknowledgements are given.
	ErrNotAttested = errors.New("attestation incomplete: all three confirmations are required")
	// ErrEmptyRx rejects a manual RX entry with no digits in it.
	ErrEmptyRx = errors.New("prescription number must contain digits")
)

// ValidationError lists the required fields still missing from the record.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record not ready to save: missing %s", strings.Join(e.Missing, ", "))
}

// UnknownFieldError reports an edit against a field the record does not have.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown record field %q", e.Field)
}
