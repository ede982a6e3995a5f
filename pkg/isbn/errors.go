package isbn

import "fmt"

// Error is the set of conditions reported for an identifier that cannot be used.
// The text of each value is stable and may be shown to callers as-is.
type Error string

const (
	ErrNull    Error = "ISBN is null"
	ErrEmpty   Error = "ISBN is empty"
	ErrInvalid Error = "ISBN is not valid"
)

func (e Error) Error() string {
	return string(e)
}

// Both wrap ErrInvalid so callers only interested in "not valid" can test for that.
var (
	ErrMalformed = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrChecksum  = fmt.Errorf("%w: check digit mismatch", ErrInvalid)
)
