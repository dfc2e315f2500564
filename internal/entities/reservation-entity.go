package entities

import "time"

type Reservation struct {
	ID         uint64    `json:"id"`
	Code       string    `json:"code"`
	CustomerID uint64    `json:"customer_id"`
	ForkliftID uint64    `json:"forklift_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	// TotalCost считается один раз при создании и больше не пересчитывается.
	TotalCost float64           `json:"total_cost"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Связанные данные, заполняются при выборке со связями (не колонки таблицы).
	Customer *User     `json:"customer,omitempty"`
	Forklift *Forklift `json:"forklift,omitempty"`
}
