package seatmap

import "errors"

var (
	ErrIndexOutOfRange  = errors.New("seat index out of range")
	ErrReservedSeat     = errors.New("cannot change a reserved seat")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidStatus    = errors.New("invalid seat status")
	ErrEmptyLayout      = errors.New("invalid layout: no seats")
)
