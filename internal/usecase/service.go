package usecase

import (
	"seat-map/internal/data/repository"
	"seat-map/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	SeatMap SeatMapService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		SeatMap: NewSeatMapService(repo, config, log),
	}
}
