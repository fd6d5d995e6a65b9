// Package-level sentinel errors shared across repositories. Higher
// layers use errors.Is to distinguish a missing row from a real
// store failure without depending on database/sql directly.
package database

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")
