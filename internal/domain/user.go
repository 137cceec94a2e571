package domain

type UserRole string

const (
	UserRoleHost  UserRole = "host"
	UserRoleGuest UserRole = "guest"
)

// User is a marketplace account, either a host or a guest.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        UserRole `json:"role"`
	PayPalEmail string   `json:"paypal_email,omitempty"`
	CreatedAt   any      `json:"created_at,omitempty"`
}
