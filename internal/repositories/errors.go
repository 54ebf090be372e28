package repositories

import "errors"

// ErrNotFound reports that a referenced id does not exist. Handlers translate
// it to a 404.
var ErrNotFound = errors.New("record not found")
