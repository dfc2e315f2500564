package dto

type CreateForkliftDTO struct {
	Name        string  `json:"name" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	RatePerDay  float64 `json:"rate_per_day" validate:"required,gt=0"`
	IsAvailable *bool   `json:"is_available,omitempty"`
	Description string  `json:"description"`
}

type ForkliftDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Capacity    int     `json:"capacity"`
	RatePerDay  float64 `json:"rate_per_day"`
	IsAvailable bool    `json:"is_available"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type ShortForkliftDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}
