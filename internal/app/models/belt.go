package models

// Belt defines one rung of the belt ladder based on the 'belts' table.
// The ladder is seeded at startup and read-only afterwards.
type Belt struct {
	ID          int64     `json:"id" db:"id"`
	Color       BeltColor `json:"color" db:"color"` // Unique
	Order       int       `json:"order" db:"display_order"`
	Description string    `json:"description" db:"description"`
	MinimumDays int       `json:"minimumDays" db:"minimum_days"` // Conventional time-in-grade, not enforced
	IsBlackBelt bool      `json:"isBlackBelt" db:"is_black_belt"`
	DanLevel    int       `json:"danLevel" db:"dan_level"` // 0 for colored belts
}
