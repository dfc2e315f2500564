package entities

import "time"

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// Password - bcrypt-хеш, наружу не отдаётся.
	Password string `json:"-"`
	Role     string `json:"role"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
