package model

import "errors"

// ErrValidation reports a malformed row: a bad key shape, a key collision,
// or a value where the schema expects something else. Validation failures
// surface at Item construction, before any file I/O for the row.
var ErrValidation = errors.New("invalid row")
