package entities

import "time"

type Forklift struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Capacity    int     `json:"capacity"`
	RatePerDay  float64 `json:"rate_per_day"`
	IsAvailable bool    `json:"is_available"`
	Description string  `json:"description"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
