package response

import (
	"time"

	"seat-map/internal/data/entity"
	"seat-map/internal/seatmap"
)

type LayoutResponse struct {
	Name         string `json:"name"`
	Columns      int    `json:"columns"`
	PricePerSeat int    `json:"price_per_seat"`
	TotalSeats   int    `json:"total_seats"`
}

type SummaryResponse struct {
	Counts        map[seatmap.Status]int `json:"counts"`
	SelectedSeats []seatmap.Seat         `json:"selected_seats"`
	Details       []string               `json:"details"`
	Total         int                    `json:"total"`
}

type SessionResponse struct {
	ID           string          `json:"id"`
	Layout       string          `json:"layout"`
	Columns      int             `json:"columns"`
	PricePerSeat int             `json:"price_per_seat"`
	Seats        []seatmap.Seat  `json:"seats"`
	Summary      SummaryResponse `json:"summary"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SeatChangeResponse reports the outcome of a toggle or adjust. Seat is nil
// when an adjust found no eligible seat.
type SeatChangeResponse struct {
	Changed bool            `json:"changed"`
	Seat    *seatmap.Seat   `json:"seat,omitempty"`
	Summary SummaryResponse `json:"summary"`
}

func NewLayoutResponse(layout *entity.Layout, defaultPrice int) LayoutResponse {
	price := layout.PricePerSeat
	if price == 0 {
		price = defaultPrice
	}

	return LayoutResponse{
		Name:         layout.Name,
		Columns:      layout.Columns,
		PricePerSeat: price,
		TotalSeats:   len(layout.Seats),
	}
}

func NewSummaryResponse(summary seatmap.Summary) SummaryResponse {
	return SummaryResponse{
		Counts:        summary.Counts,
		SelectedSeats: summary.SelectedSeats,
		Details:       summary.Details,
		Total:         summary.Total,
	}
}

// NewSessionResponse builds a snapshot; the caller holds the session lock
func NewSessionResponse(session *entity.Session) *SessionResponse {
	return &SessionResponse{
		ID:           session.ID.String(),
		Layout:       session.Layout,
		Columns:      session.Map.Columns(),
		PricePerSeat: session.Map.PricePerSeat(),
		Seats:        session.Map.Seats(),
		Summary:      NewSummaryResponse(session.Map.Summary()),
		CreatedAt:    session.CreatedAt,
	}
}
