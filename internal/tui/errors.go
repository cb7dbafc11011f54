package tui

import "errors"

// ErrNoDisplay is returned by [New] when no display component is given.
var ErrNoDisplay = errors.New("no display component provided")
