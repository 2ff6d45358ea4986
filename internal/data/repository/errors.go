package repository

import "errors"

var (
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrSessionNotFound = errors.New("session not found")
)
