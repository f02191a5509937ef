package result

import "errors"

var ErrNotFound = errors.New("result not found or already deleted")
