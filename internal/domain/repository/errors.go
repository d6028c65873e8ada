package repository

import "errors"

// ErrNotFound is returned when a query matches no record. Ownership-filtered
// mutations return it as well, so a record owned by someone else is
// indistinguishable from a missing one.
var ErrNotFound = errors.New("record not found")
