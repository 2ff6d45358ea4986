// Package seatmap holds the seat selection state machine. A SeatMap is owned
// by a single caller and is not safe for concurrent use.
package seatmap

import "fmt"

const (
	DefaultPricePerSeat = 10
	DefaultColumns      = 10
)

type SeatMap struct {
	seats        []Seat
	columns      int
	pricePerSeat int
}

type Option func(*SeatMap)

// WithColumns sets the row width used for seat labels.
func WithColumns(columns int) Option {
	return func(m *SeatMap) {
		if columns > 0 {
			m.columns = columns
		}
	}
}

// WithPricePerSeat sets the price charged for each selected seat.
func WithPricePerSeat(price int) Option {
	return func(m *SeatMap) {
		if price >= 0 {
			m.pricePerSeat = price
		}
	}
}

// New builds a seat map from an ordered list of status labels.
func New(labels []string, opts ...Option) (*SeatMap, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyLayout
	}

	seats := make([]Seat, len(labels))
	for i, label := range labels {
		status, err := ParseStatus(label)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		seats[i] = Seat{ID: i, Status: status}
	}

	m := &SeatMap{
		seats:        seats,
		columns:      DefaultColumns,
		pricePerSeat: DefaultPricePerSeat,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *SeatMap) Len() int {
	return len(m.seats)
}

func (m *SeatMap) Columns() int {
	return m.columns
}

func (m *SeatMap) PricePerSeat() int {
	return m.pricePerSeat
}

// Seats returns a copy of the current sequence.
func (m *SeatMap) Seats() []Seat {
	out := make([]Seat, len(m.seats))
	copy(out, m.seats)
	return out
}

// Seat returns the seat at index.
func (m *SeatMap) Seat(index int) (Seat, error) {
	if index < 0 || index >= len(m.seats) {
		return Seat{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return m.seats[index], nil
}

// ToggleSeat flips an available seat to selected (by the user) or a selected
// seat back to available. Reserved seats are rejected.
func (m *SeatMap) ToggleSeat(index int) (Seat, error) {
	current, err := m.Seat(index)
	if err != nil {
		return Seat{}, err
	}

	var next Seat
	switch current.Status {
	case StatusReserved:
		return Seat{}, fmt.Errorf("seat %d: %w", index, ErrReservedSeat)
	case StatusAvailable:
		next = Seat{ID: index, Status: StatusSelected, SetByUser: true}
	default:
		next = Seat{ID: index, Status: StatusAvailable}
	}

	m.seats[index] = next
	return next, nil
}

// AdjustSelection selects the first available seat on increment, or releases
// the first selected seat that was not picked by the user on decrement. The
// returned bool is false when no seat was eligible.
func (m *SeatMap) AdjustSelection(direction Direction) (Seat, bool, error) {
	var (
		index = -1
		next  Seat
	)

	switch direction {
	case DirectionIncrement:
		index = m.firstIndex(func(s Seat) bool { return s.Status == StatusAvailable })
		if index >= 0 {
			next = Seat{ID: index, Status: StatusSelected}
		}
	case DirectionDecrement:
		// seats the user picked on the map must be released by toggling them
		index = m.firstIndex(func(s Seat) bool { return s.Status == StatusSelected && !s.SetByUser })
		if index >= 0 {
			next = Seat{ID: index, Status: StatusAvailable}
		}
	default:
		return Seat{}, false, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	if index < 0 {
		return Seat{}, false, nil
	}

	m.seats[index] = next
	return next, true, nil
}

func (m *SeatMap) firstIndex(match func(Seat) bool) int {
	for i, seat := range m.seats {
		if match(seat) {
			return i
		}
	}
	return -1
}
