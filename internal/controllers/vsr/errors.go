package vsrController

import "errors"

// ErrValidation reports malformed or missing input. It is always raised before
// any persistence call; handlers translate it to a 400.
var ErrValidation = errors.New("invalid request")
