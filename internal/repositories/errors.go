package repositories

import "errors"

// ErrNotPersisted is returned when a freshly inserted row cannot be read back.
var ErrNotPersisted = errors.New("inserted row not found")
