package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (rol por usuario).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	// GetByUserID devuelve nil (sin error) si el usuario no tiene perfil:
	// la ausencia de perfil es un estado válido, distinto de "sin rol conocido".
	GetByUserID(userID string) (*entity.Profile, error)
}
