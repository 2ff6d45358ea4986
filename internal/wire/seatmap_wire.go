package wire

import (
	"seat-map/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeatMap(r chi.Router, seatMapHandler *adaptor.SeatMapHandler) {
	// GET /api/layouts - Layouts a session can be opened from
	r.Get("/api/layouts", seatMapHandler.ListLayouts)

	r.Route("/api/sessions", func(r chi.Router) {
		// POST /api/sessions - Open a seat map
		r.Post("/", seatMapHandler.OpenSession)

		r.Route("/{id}", func(r chi.Router) {
			// GET /api/sessions/{id} - Seats plus summary
			r.Get("/", seatMapHandler.GetSession)

			// GET /api/sessions/{id}/summary - Counts, selected seats, total
			r.Get("/summary", seatMapHandler.GetSummary)

			// POST /api/sessions/{id}/seats/{index}/toggle - Click on a seat
			r.Post("/seats/{index}/toggle", seatMapHandler.ToggleSeat)

			// POST /api/sessions/{id}/adjust - The "+" and "-" buttons
			r.Post("/adjust", seatMapHandler.AdjustSelection)

			// DELETE /api/sessions/{id} - Discard the seat map
			r.Delete("/", seatMapHandler.CloseSession)
		})
	})
}
