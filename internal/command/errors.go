package command

import (
	"errors"
	"fmt"
)

// Classified failures. Parsing and authorization return these so the router
// boundary can translate them; anything else stays operator-facing.
var (
	// ErrMemberNotFound: a target token did not resolve to a guild member.
	ErrMemberNotFound = errors.New("member could not be resolved")
	// ErrMissingArgument: a required argument is absent or malformed.
	ErrMissingArgument = errors.New("required argument missing")
	// ErrPermissionDenied: the issuer lacks the declared capability.
	ErrPermissionDenied = errors.New("permission denied")
)

// ExecError wraps a gateway failure that happened after parsing and
// authorization passed. It is never translated into a chat reply.
type ExecError struct {
	Op  string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// execErr wraps err as an ExecError, passing nil through.
func execErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ExecError{Op: op, Err: err}
}

// Translate maps a classified failure onto its user-facing reply. The false
// return means no reply is sent; the failure belongs in the operator log.
func Translate(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return "Could not find that member.", true
	case errors.Is(err, ErrPermissionDenied):
		return "You do not have permission to use this command.", true
	case errors.Is(err, ErrMissingArgument):
		return "Please provide the necessary arguments.", true
	}
	return "", false
}
