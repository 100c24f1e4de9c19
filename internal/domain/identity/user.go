package identity

// DefaultRoleName is the role assigned to registrations that carry no role,
// or an unknown one. The row is seeded at startup; a missing seed is a fatal
// initialization error, never a runtime fallback.
const DefaultRoleName = "CUSTOMER"

type Role struct {
	RoleID int64  `json:"roleId"`
	Name   string `json:"name"`
}

// User is the authentication principal. PasswordHash holds a bcrypt hash and
// must never reach a serialized view.
type User struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	RoleID       int64  `json:"roleId"`
}
