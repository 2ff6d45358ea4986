package adaptor

import (
	"seat-map/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	SeatMap *SeatMapHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		SeatMap: NewSeatMapHandler(service.SeatMap, log),
	}
}
