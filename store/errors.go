package store

import "errors"

// ErrClosed is returned by any SolutionStore method called after Close.
var ErrClosed = errors.New("store: solution store is closed")
