package dto

type CreateReservationDTO struct {
	ForkliftID uint64 `json:"forklift_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Notes      string `json:"notes"`
}

type UpdateReservationStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed"`
}

type ReservationDTO struct {
	ID        uint64  `json:"id"`
	Code      string  `json:"code"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	TotalCost float64 `json:"total_cost"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`

	Customer *UserSummaryDTO   `json:"customer,omitempty"`
	Forklift *ShortForkliftDTO `json:"forklift,omitempty"`
}
