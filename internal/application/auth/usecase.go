// Package auth implementa el login local: un único usuario sembrado con
// contraseña bcrypt. Es un mock de autenticación, no un modelo de seguridad.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
	pkgjwt "github.com/facturapro/facturapro-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwt JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwt}
}

// Login valida email y contraseña contra el usuario local y emite un token de
// sesión. Credenciales incorrectas devuelven ErrUnauthorized sin distinguir
// si el email existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwt.Secret, user.ID, user.Name, user.Email, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
