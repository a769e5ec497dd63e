package domain

type UserRole string

const (
	UserRoleStudent       UserRole = "STUDENT"
	UserRoleAdministrator UserRole = "ADMINISTRATOR"
)

// User is a requester or administrator. Usernames are unique
// case-insensitively; the password is stored only as a bcrypt hash.
type User struct {
	ID           int32    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	// Students only.
	RegistrationNumber string `json:"registration_number,omitempty"`
}

func (u *User) IsAdministrator() bool {
	return u.Role == UserRoleAdministrator
}
