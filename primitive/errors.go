package primitive

import "errors"

// ErrEmpty is returned by aggregations that need at least one element.
var ErrEmpty = errors.New("primitive: operation on empty container")
