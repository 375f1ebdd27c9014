package console

import "errors"

// ErrMalformedInput is returned when stdin does not contain a parseable
// whitespace-separated board line.
var ErrMalformedInput = errors.New("console: malformed board input")
