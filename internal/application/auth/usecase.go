package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
// ExpMinutes <= 0 emite tokens sin vencimiento.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer puerto para el correo de recuperación de contraseña.
type Mailer interface {
	SendPasswordReset(to string) error
}

// AuthUseCase casos de uso de autenticación: registro, login y forgot-password.
type AuthUseCase struct {
	users  repository.UserRepository
	mailer Mailer
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, mailer: mailer, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, persiste y emite token.
// Devuelve ErrUsernameAlreadyExists o ErrEmailAlreadyExists si ya hay registro.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if existing, err := uc.users.FindByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	if existing, err := uc.users.FindByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := uc.users.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *toUserResponse(user), Token: token}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// La comparación del hash la hace bcrypt (tiempo constante).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *toUserResponse(user), Token: token}, nil
}

// ForgotPassword acepta cualquier email y dispara el mailer si el usuario existe.
// Nunca revela al cliente si la cuenta existe o no falla: siempre éxito.
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.users.FindByEmail(email)
	if err != nil || user == nil {
		return nil
	}
	_ = uc.mailer.SendPasswordReset(user.Email)
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponse expone el mapeo para handlers que ya tienen el usuario resuelto
// (GET /api/auth/me).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return toUserResponse(u)
}
