// internal/wire/wire.go
package wire

import (
	"net/http"

	"seat-map/internal/adaptor"
	"seat-map/internal/data/repository"
	"seat-map/internal/usecase"
	"seat-map/pkg/middleware"
	"seat-map/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, logger),
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireSeatMap(r, handler.SeatMap)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
