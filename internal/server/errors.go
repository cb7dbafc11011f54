package server

import "errors"

var errNoAddress = errors.New("no HTTP address configured")
