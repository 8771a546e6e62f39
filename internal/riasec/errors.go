package riasec

import "fmt"

// InvalidCodeError indicates a malformed or out-of-alphabet RIASEC code.
// Callers can recover by re-prompting for a valid code.
type InvalidCodeError struct {
	Code   string
	Reason string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid RIASEC code %q: %s", e.Code, e.Reason)
}
