package config

import "errors"

var (
	// ErrInvalidGrid indicates a non-positive width, height or layer count.
	ErrInvalidGrid = errors.New("config: grid dimensions must be positive")

	// ErrInvalidOutput indicates an empty output directory or file name.
	ErrInvalidOutput = errors.New("config: output location must be set")
)
