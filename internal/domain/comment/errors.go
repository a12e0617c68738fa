package comment

import "errors"

// ErrInvalidInput indicates a comment with missing required fields.
var ErrInvalidInput = errors.New("invalid comment input")
