package cache

import "github.com/pkg/errors"

// ErrNotFound is returned when the requested key holds no value.
var ErrNotFound = errors.New("cache: not found")
