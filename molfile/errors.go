package molfile

import "github.com/cockroachdb/errors"

// ParseError reports a malformed line in a molecule text record, carrying
// the 1-based line number and the raw text for diagnostics.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return errors.Wrapf(e.Err, "molfile: line %d: %q", e.Line, e.Text).Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	// ErrMissingSeparator indicates a record's vertex section never hit
	// the literal "###" line before EOF or the next record.
	ErrMissingSeparator = errors.New("molfile: record missing \"###\" separator")

	// ErrMalformedVertexLine indicates a header line isn't "<int> <atom_type>".
	ErrMalformedVertexLine = errors.New("molfile: malformed vertex line")

	// ErrMalformedEdgeLine indicates an edge line has fewer than 3 fields.
	ErrMalformedEdgeLine = errors.New("molfile: malformed edge line")

	// ErrUnknownVertex indicates an edge references a vertex id not declared
	// in the header section.
	ErrUnknownVertex = errors.New("molfile: edge references undeclared vertex")
)
