package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"seat-map/internal/data/repository"
	"seat-map/internal/dto/request"
	"seat-map/internal/seatmap"
	"seat-map/internal/usecase"
	"seat-map/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatMapHandler struct {
	service usecase.SeatMapService
	log     *zap.Logger
}

func NewSeatMapHandler(service usecase.SeatMapService, log *zap.Logger) *SeatMapHandler {
	return &SeatMapHandler{
		service: service,
		log:     log.With(zap.String("handler", "seatmap")),
	}
}

// ListLayouts handles GET /api/layouts
func (h *SeatMapHandler) ListLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := h.service.ListLayouts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list layouts")
		return
	}

	utils.ResponseSuccess(w, "success", layouts)
}

// OpenSession handles POST /api/sessions
func (h *SeatMapHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	// An empty body opens the default layout
	var req request.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.OpenSession(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "open session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/sessions/{id}
func (h *SeatMapHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// GetSummary handles GET /api/sessions/{id}/summary
func (h *SeatMapHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// ToggleSeat handles POST /api/sessions/{id}/seats/{index}/toggle
func (h *SeatMapHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.service.ToggleSeat(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		h.handleServiceError(w, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// AdjustSelection handles POST /api/sessions/{id}/adjust
func (h *SeatMapHandler) AdjustSelection(w http.ResponseWriter, r *http.Request) {
	var req request.AdjustSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.AdjustSelection(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "adjust selection")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CloseSession handles DELETE /api/sessions/{id}
func (h *SeatMapHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "close session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors to HTTP responses
func (h *SeatMapHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, repository.ErrLayoutNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, seatmap.ErrReservedSeat):
		h.log.Warn(operation+" failed - reserved seat",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, seatmap.ErrIndexOutOfRange),
		errors.Is(err, seatmap.ErrInvalidDirection):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
