package seatmap

import "fmt"

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSelected  Status = "selected"
)

// Statuses lists every status variant in display order.
var Statuses = []Status{StatusAvailable, StatusReserved, StatusSelected}

// ParseStatus converts a layout label into a Status.
func ParseStatus(label string) (Status, error) {
	switch Status(label) {
	case StatusAvailable, StatusReserved, StatusSelected:
		return Status(label), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
}

type Direction string

const (
	DirectionIncrement Direction = "increment"
	DirectionDecrement Direction = "decrement"
)

// Seat is one position in the map. SetByUser marks a selection made by a
// direct toggle, as opposed to one made through AdjustSelection.
type Seat struct {
	ID        int    `json:"id"`
	Status    Status `json:"status"`
	SetByUser bool   `json:"set_by_user"`
}
