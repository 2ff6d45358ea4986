package seatmap

import "fmt"

type Summary struct {
	Counts        map[Status]int `json:"counts"`
	SelectedSeats []Seat         `json:"selected_seats"`
	Details       []string       `json:"details"`
	Total         int            `json:"total"`
}

// Summary recomputes counts, the selected seats and the checkout total from
// the current sequence.
func (m *SeatMap) Summary() Summary {
	counts := make(map[Status]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}

	selected := make([]Seat, 0)
	details := make([]string, 0)
	for _, seat := range m.seats {
		counts[seat.Status]++
		if seat.Status == StatusSelected {
			selected = append(selected, seat)
			details = append(details, m.label(seat))
		}
	}

	return Summary{
		Counts:        counts,
		SelectedSeats: selected,
		Details:       details,
		Total:         len(selected) * m.pricePerSeat,
	}
}

// label formats a seat as "row: 7 seat: 4 price: $10".
func (m *SeatMap) label(seat Seat) string {
	row := seat.ID/m.columns + 1
	col := seat.ID%m.columns + 1
	return fmt.Sprintf("row: %d seat: %d price: $%d", row, col, m.pricePerSeat)
}
