// Package auth contiene los casos de uso de autenticación y administración de
// cuentas: login con usuario/contraseña y alta de usuarios con perfil de rol.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el alta de usuario + perfil en una sola transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunUserTx(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: login y creación de usuarios.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tx          TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, tx: tx, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera un JWT con el rol canónico del
// perfil. Un usuario sin perfil obtiene token con rol vacío: puede autenticarse
// pero el gate de roles le negará toda operación que declare roles.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	// El alias legado "admin" se canonicaliza aquí, en la frontera: aguas
	// adentro solo circulan roles canónicos.
	role := ""
	profile, err := uc.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.Active {
		role = entity.NormalizeRole(profile.Role)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, role, user.Superuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, role),
	}, nil
}

// CreateUser crea un usuario y su perfil de rol en una transacción (solo lo
// invoca un administrador; el gate HTTP hace esa verificación).
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	role := entity.NormalizeRole(in.Role)
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Active:       true,
		Superuser:    in.Superuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Role:       role,
		Phone:      in.Phone,
		Department: in.Department,
		HiredAt:    now,
		Active:     true,
		CreatedAt:  now,
	}
	err = uc.tx.RunUserTx(ctx, func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, role), nil
}

func toUserResponse(u *entity.User, role string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      role,
		Active:    u.Active,
		Superuser: u.Superuser,
		CreatedAt: u.CreatedAt,
	}
}
