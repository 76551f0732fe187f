package entity

import (
	"fmt"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

// ParseUserRole valida un rol.
func ParseUserRole(s string) (string, error) {
	switch s {
	case RoleAdmin, RoleManager, RoleUser:
		return s, nil
	default:
		return "", fmt.Errorf("rol inválido: %q", s)
	}
}

// User representa un usuario del sistema (autenticación y autorización del
// adaptador HTTP/CLI; el core de dominio no consulta identidad).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, MANAGER, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
