package interfaces

import "errors"

// ErrAlreadyExists is returned by Create methods when the key is taken.
var ErrAlreadyExists = errors.New("item already exists")
