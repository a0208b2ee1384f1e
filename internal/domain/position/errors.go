package position

import "errors"

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrPositionExists   = errors.New("position ID already exists")
)
