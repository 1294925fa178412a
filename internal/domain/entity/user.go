package entity

import "time"

// User representa una identidad de autenticación del sistema.
// El rol NO vive aquí: lo aporta el Profile asociado (uno a uno, opcional).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool
	Superuser    bool // salta todas las verificaciones de rol
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
