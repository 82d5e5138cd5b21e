package domain

import "errors"

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrMarkNotFound     = errors.New("mark not found")
)
