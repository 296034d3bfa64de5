package session

// Role is the platform role carried in the access token.
type Role string

const (
	RoleUser          Role = "user"
	RoleBusinessOwner Role = "business_owner"
	RoleWorker        Role = "worker"
	RoleAdmin         Role = "admin"
)

// User is the identity derived from the access token claims. It is a
// display/identity hint only; the server's acceptance of the bearer token
// is the authoritative check.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
