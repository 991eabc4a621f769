package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string // admin, user, viewer
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
