package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seat-map/internal/data/entity"
	"seat-map/internal/data/repository"
	"seat-map/internal/dto/request"
	"seat-map/internal/dto/response"
	"seat-map/internal/seatmap"
	"seat-map/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidSessionID = errors.New("invalid session ID")
)

type SeatMapService interface {
	ListLayouts(ctx context.Context) ([]response.LayoutResponse, error)

	// Session lifecycle
	OpenSession(ctx context.Context, req *request.OpenSessionRequest) (*response.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
	SweepSessions(ctx context.Context) int

	// Seat transitions
	ToggleSeat(ctx context.Context, sessionID string, index int) (*response.SeatChangeResponse, error)
	AdjustSelection(ctx context.Context, sessionID string, req *request.AdjustSelectionRequest) (*response.SeatChangeResponse, error)
	GetSummary(ctx context.Context, sessionID string) (*response.SummaryResponse, error)
}

type seatMapService struct {
	repo   *repository.Repository
	config utils.SeatMapConfig
	log    *zap.Logger
	now    func() time.Time
}

func NewSeatMapService(repo *repository.Repository, config *utils.Config, log *zap.Logger) SeatMapService {
	return &seatMapService{
		repo:   repo,
		config: config.SeatMap,
		log:    log.With(zap.String("service", "seatmap")),
		now:    time.Now,
	}
}

func (s *seatMapService) ListLayouts(ctx context.Context) ([]response.LayoutResponse, error) {
	layouts, err := s.repo.Layout.List(ctx)
	if err != nil {
		s.log.Error("Failed to list layouts", zap.Error(err))
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	result := make([]response.LayoutResponse, 0, len(layouts))
	for _, layout := range layouts {
		result = append(result, response.NewLayoutResponse(layout, s.config.PricePerSeat))
	}

	return result, nil
}

func (s *seatMapService) OpenSession(ctx context.Context, req *request.OpenSessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Open session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	name := req.Layout
	if name == "" {
		name = s.config.DefaultLayout
	}

	layout, err := s.repo.Layout.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	// Layouts from the database are not validated on the way in
	if errs := utils.ValidateStruct(layout); len(errs) > 0 {
		s.log.Error("Stored layout is invalid",
			zap.String("layout", name),
			zap.Any("errors", errs),
		)
		return nil, fmt.Errorf("layout %s is invalid: %s", name, utils.FormatValidationErrors(errs))
	}

	price := layout.PricePerSeat
	if price == 0 {
		price = s.config.PricePerSeat
	}

	seatMap, err := seatmap.New(layout.Seats,
		seatmap.WithColumns(layout.Columns),
		seatmap.WithPricePerSeat(price),
	)
	if err != nil {
		return nil, fmt.Errorf("build seat map %s: %w", name, err)
	}

	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Layout:     layout.Name,
		Map:        seatMap,
		LastSeenAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to store session", zap.Error(err))
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.log.Info("Session opened",
		zap.String("session_id", session.ID.String()),
		zap.String("layout", layout.Name),
		zap.Int("seats", seatMap.Len()),
		zap.Int("price_per_seat", price),
	)

	session.Lock()
	defer session.Unlock()
	return response.NewSessionResponse(session), nil
}

func (s *seatMapService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch(s.now())

	return response.NewSessionResponse(session), nil
}

func (s *seatMapService) CloseSession(ctx context.Context, sessionID string) error {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return err
	}

	if err := s.repo.Session.Delete(ctx, id); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	s.log.Info("Session closed", zap.String("session_id", sessionID))
	return nil
}

func (s *seatMapService) SweepSessions(ctx context.Context) int {
	removed := s.repo.Session.Sweep(ctx, s.now())
	if removed > 0 {
		s.log.Info("Idle sessions removed",
			zap.Int("removed", removed),
			zap.Int("remaining", s.repo.Session.Count(ctx)),
		)
	}
	return removed
}

func (s *seatMapService) ToggleSeat(ctx context.Context, sessionID string, index int) (*response.SeatChangeResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch(s.now())

	seat, err := session.Map.ToggleSeat(index)
	if err != nil {
		s.log.Warn("Toggle seat rejected",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.Int("index", index),
		)
		return nil, fmt.Errorf("toggle seat: %w", err)
	}

	s.log.Debug("Seat toggled",
		zap.String("session_id", sessionID),
		zap.Int("index", seat.ID),
		zap.String("status", string(seat.Status)),
	)

	return &response.SeatChangeResponse{
		Changed: true,
		Seat:    &seat,
		Summary: response.NewSummaryResponse(session.Map.Summary()),
	}, nil
}

func (s *seatMapService) AdjustSelection(ctx context.Context, sessionID string, req *request.AdjustSelectionRequest) (*response.SeatChangeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch(s.now())

	seat, changed, err := session.Map.AdjustSelection(seatmap.Direction(req.Direction))
	if err != nil {
		return nil, fmt.Errorf("adjust selection: %w", err)
	}

	result := &response.SeatChangeResponse{
		Changed: changed,
		Summary: response.NewSummaryResponse(session.Map.Summary()),
	}
	if changed {
		result.Seat = &seat
	}

	s.log.Debug("Selection adjusted",
		zap.String("session_id", sessionID),
		zap.String("direction", req.Direction),
		zap.Bool("changed", changed),
	)

	return result, nil
}

func (s *seatMapService) GetSummary(ctx context.Context, sessionID string) (*response.SummaryResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch(s.now())

	summary := response.NewSummaryResponse(session.Map.Summary())
	return &summary, nil
}

func (s *seatMapService) findSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func parseSessionID(sessionID string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidSessionID, sessionID)
	}
	return id, nil
}
