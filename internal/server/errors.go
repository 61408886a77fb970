package server

import "errors"

var errNoServersAreCreated = errors.New("no http handler or address configured")
