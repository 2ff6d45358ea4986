package entity

// Layout is the initial seat configuration a session starts from.
// A zero PricePerSeat means the configured default price applies.
type Layout struct {
	Name         string   `db:"name" yaml:"name" json:"name" validate:"required,max=64"`
	Columns      int      `db:"seat_columns" yaml:"columns" json:"columns" validate:"gt=0"`
	PricePerSeat int      `db:"price_per_seat" yaml:"price_per_seat" json:"price_per_seat" validate:"gte=0"`
	Seats        []string `db:"seats" yaml:"seats" json:"seats" validate:"required,min=1,dive,oneof=available reserved selected"`
}
