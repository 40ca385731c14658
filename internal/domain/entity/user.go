package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un operador del sistema.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt (o sha256 hex heredado); nunca texto plano
	Role         string
	Email        string
	LastLogin    *time.Time
}
