package mcesapi

import "github.com/cockroachdb/errors"

// InvalidInput wraps a precondition violation raised by one of the engine
// packages (bad anchor arity, nil graph, too many vertices) into the single
// error kind callers outside this module are expected to check for (spec
// §7): errors.As(err, &mcesapi.InvalidInput{}) is true regardless of which
// inner package raised it.
type InvalidInput struct {
	Op  string
	err error
}

func (e *InvalidInput) Error() string {
	return "mcesapi: invalid input for " + e.Op + ": " + e.err.Error()
}

func (e *InvalidInput) Unwrap() error { return e.err }

func invalidInput(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&InvalidInput{Op: op, err: err})
}

// ParseError wraps a molfile parse failure into the single error kind spec
// §7 names for malformed input files.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string { return "mcesapi: " + e.err.Error() }

func (e *ParseError) Unwrap() error { return e.err }
