package repository

import (
	"fmt"

	"seat-map/pkg/database"
	"seat-map/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Layout  LayoutRepository
	Session SessionRepository
}

// NewRepository wires the layout sources and the session store. db may be
// nil when no layout database is configured.
func NewRepository(db database.PgxIface, config *utils.Config, log *zap.Logger) (*Repository, error) {
	var sources []LayoutRepository

	if db != nil {
		sources = append(sources, NewPostgresLayoutRepository(db, log))
	}

	if config.SeatMap.LayoutFile != "" {
		layouts, err := LoadLayoutFile(config.SeatMap.LayoutFile)
		if err != nil {
			return nil, fmt.Errorf("load layouts: %w", err)
		}
		log.Info("Layouts loaded from file",
			zap.String("path", config.SeatMap.LayoutFile),
			zap.Int("count", len(layouts)),
		)
		sources = append(sources, NewStaticLayoutRepository(layouts...))
	}

	sources = append(sources, NewStaticLayoutRepository(DefaultLayout()))

	return &Repository{
		Layout:  NewChainLayoutRepository(sources...),
		Session: NewSessionRepository(config.SeatMap.SessionTTL, log),
	}, nil
}
