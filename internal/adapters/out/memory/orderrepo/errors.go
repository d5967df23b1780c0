package orderrepo

import "errors"

// ErrReadOnly is returned by write methods of a repository created without a tracker.
var ErrReadOnly = errors.New("order repository is read-only outside a unit of work")
