package dto

import "time"

// LoginRequest entrada para login con usuario y contraseña.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario con perfil de rol (solo administrador).
// El password llega en texto y se hashea en el caso de uso.
type CreateUserRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=150"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=vendedor gerente administrador cliente admin"`
	Phone      string `json:"phone" validate:"omitempty,max=15"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Superuser  bool   `json:"superuser"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role,omitempty"` // vacío si no tiene perfil
	Active    bool      `json:"active"`
	Superuser bool      `json:"superuser"`
	CreatedAt time.Time `json:"created_at"`
}
