package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"seat-map/internal/data/entity"
	"seat-map/pkg/database"
	"seat-map/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type LayoutRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Layout, error)
	List(ctx context.Context) ([]*entity.Layout, error)
}

// ==================== BUILT-IN ====================

const DefaultLayoutName = "default"

// defaultReserved marks the seats already taken in the built-in hall
var defaultReserved = []int{2, 3, 14, 15, 16, 27, 33, 34, 45, 46, 51, 58, 62, 63, 70, 71, 72, 79, 84, 85}

// DefaultLayout is a 10 wide hall of 88 seats
func DefaultLayout() *entity.Layout {
	seats := make([]string, 88)
	for i := range seats {
		seats[i] = "available"
	}
	for _, i := range defaultReserved {
		seats[i] = "reserved"
	}

	return &entity.Layout{
		Name:    DefaultLayoutName,
		Columns: 10,
		Seats:   seats,
	}
}

type staticLayoutRepository struct {
	layouts map[string]*entity.Layout
}

// NewStaticLayoutRepository serves a fixed set of layouts
func NewStaticLayoutRepository(layouts ...*entity.Layout) LayoutRepository {
	repo := &staticLayoutRepository{layouts: make(map[string]*entity.Layout, len(layouts))}
	for _, layout := range layouts {
		repo.layouts[layout.Name] = layout
	}
	return repo
}

func (r *staticLayoutRepository) FindByName(ctx context.Context, name string) (*entity.Layout, error) {
	layout, ok := r.layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	return cloneLayout(layout), nil
}

func (r *staticLayoutRepository) List(ctx context.Context) ([]*entity.Layout, error) {
	layouts := make([]*entity.Layout, 0, len(r.layouts))
	for _, layout := range r.layouts {
		layouts = append(layouts, cloneLayout(layout))
	}
	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Name < layouts[j].Name })
	return layouts, nil
}

func cloneLayout(layout *entity.Layout) *entity.Layout {
	out := *layout
	out.Seats = append([]string(nil), layout.Seats...)
	return &out
}

// ==================== YAML FILE ====================

type layoutFile struct {
	Layouts []*entity.Layout `yaml:"layouts"`
}

// LoadLayoutFile reads and validates layouts from a YAML document
func LoadLayoutFile(path string) ([]*entity.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file %s: %w", path, err)
	}

	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Layouts))
	for i, layout := range file.Layouts {
		if layout == nil {
			return nil, fmt.Errorf("layout %d in %s is empty", i, path)
		}
		if errs := utils.ValidateStruct(layout); len(errs) > 0 {
			return nil, fmt.Errorf("layout %d in %s validation failed: %s", i, path, utils.FormatValidationErrors(errs))
		}
		if seen[layout.Name] {
			return nil, fmt.Errorf("layout %q in %s is defined twice", layout.Name, path)
		}
		seen[layout.Name] = true
	}

	return file.Layouts, nil
}

// ==================== POSTGRES ====================

type postgresLayoutRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresLayoutRepository(db database.PgxIface, log *zap.Logger) LayoutRepository {
	return &postgresLayoutRepository{
		db:  db,
		log: log.With(zap.String("repository", "layout")),
	}
}

func (r *postgresLayoutRepository) FindByName(ctx context.Context, name string) (*entity.Layout, error) {
	query := `
		SELECT name, seat_columns, price_per_seat, seats
		FROM seat_layouts
		WHERE name = $1 AND deleted_at IS NULL
	`

	var layout entity.Layout
	err := r.db.QueryRow(ctx, query, name).Scan(
		&layout.Name,
		&layout.Columns,
		&layout.PricePerSeat,
		&layout.Seats,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err != nil {
		r.log.Error("Failed to find layout by name",
			zap.Error(err),
			zap.String("layout", name),
		)
		return nil, fmt.Errorf("failed to find layout: %w", err)
	}

	return &layout, nil
}

func (r *postgresLayoutRepository) List(ctx context.Context) ([]*entity.Layout, error) {
	query := `
		SELECT name, seat_columns, price_per_seat, seats
		FROM seat_layouts
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list layouts", zap.Error(err))
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	defer rows.Close()

	var layouts []*entity.Layout
	for rows.Next() {
		var layout entity.Layout
		if err := rows.Scan(
			&layout.Name,
			&layout.Columns,
			&layout.PricePerSeat,
			&layout.Seats,
		); err != nil {
			r.log.Error("Failed to scan layout", zap.Error(err))
			return nil, fmt.Errorf("failed to scan layout: %w", err)
		}
		layouts = append(layouts, &layout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return layouts, nil
}

// ==================== CHAIN ====================

type chainLayoutRepository struct {
	sources []LayoutRepository
}

// NewChainLayoutRepository looks a layout up in each source in order. The
// first source defining a name wins.
func NewChainLayoutRepository(sources ...LayoutRepository) LayoutRepository {
	return &chainLayoutRepository{sources: sources}
}

func (r *chainLayoutRepository) FindByName(ctx context.Context, name string) (*entity.Layout, error) {
	for _, source := range r.sources {
		layout, err := source.FindByName(ctx, name)
		if err == nil {
			return layout, nil
		}
		if !errors.Is(err, ErrLayoutNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
}

func (r *chainLayoutRepository) List(ctx context.Context) ([]*entity.Layout, error) {
	seen := make(map[string]bool)
	var layouts []*entity.Layout

	for _, source := range r.sources {
		found, err := source.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, layout := range found {
			if seen[layout.Name] {
				continue
			}
			seen[layout.Name] = true
			layouts = append(layouts, layout)
		}
	}

	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Name < layouts[j].Name })
	return layouts, nil
}
