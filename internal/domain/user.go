package domain

import "time"

// Role represents the access level of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // никогда не сериализуется наружу
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal аутентифицированная личность запроса (из JWT)
type Principal struct {
	UserID int64
	Role   Role
}

// IsAdmin returns true if the principal has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ValidRole проверяет, что строка является допустимой ролью
func ValidRole(s string) bool {
	return Role(s) == RoleUser || Role(s) == RoleAdmin
}
