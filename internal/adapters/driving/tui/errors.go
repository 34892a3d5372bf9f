package tui

import "errors"

// ErrMissingDirectory is returned when the directory read surface is not provided.
var ErrMissingDirectory = errors.New("tui: directory is required")

// ErrMissingDispatcher is returned when the intent dispatcher is not provided.
var ErrMissingDispatcher = errors.New("tui: dispatcher is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
