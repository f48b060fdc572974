package entity

import "time"

// User representa un usuario del panel de administración.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
