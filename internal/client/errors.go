package client

import "errors"

var (
	ErrNoServices = errors.New("no client services given")
	ErrNoUI       = errors.New("no user interface given")
)
