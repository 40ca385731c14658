package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
	"github.com/jhoicas/inventory-pro/pkg/jwt"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el usuario no existe para que el tiempo de respuesta
// no revele qué factor falló.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("inventory-pro-dummy"), bcrypt.DefaultCost)

// AuthUseCase puerta de sesión: verifica credenciales y emite la sesión explícita
// que reciben las operaciones de dominio.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Named("auth"), now: time.Now}
}

// Authenticate devuelve la sesión si usuario y contraseña coinciden.
// Usuario inexistente, contraseña incorrecta y fallo del almacén producen el mismo
// domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.Session, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		uc.log.Warn().Err(err).Msg("login: error consultando usuario")
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		uc.log.Warn().Err(err).Int64("user_id", user.ID).Msg("login: no se pudo registrar last_login")
	}
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		StartedAt: now,
	}, nil
}

// Login autentica, firma el token de sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sess, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := uc.IssueToken(*sess)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: sess.ID.String(),
		User: dto.UserResponse{
			ID:       sess.UserID,
			Username: sess.Username,
			Role:     sess.Role,
		},
	}, nil
}

// IssueToken firma la sesión como JWT.
func (uc *AuthUseCase) IssueToken(sess entity.Session) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		SessionID: sess.ID.String(),
		UserID:    sess.UserID,
		Username:  sess.Username,
		Role:      sess.Role,
		StartedAt: sess.StartedAt,
	})
}

// ParseToken reconstruye la sesión desde un token firmado; domain.ErrUnauthorized si no es válido.
func (uc *AuthUseCase) ParseToken(token string) (*entity.Session, error) {
	id, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return SessionFromIdentity(id), nil
}

// SessionFromIdentity convierte los claims del token en la sesión de dominio.
func SessionFromIdentity(id jwt.Identity) *entity.Session {
	sid, err := uuid.Parse(id.SessionID)
	if err != nil {
		sid = uuid.Nil
	}
	return &entity.Session{
		ID:        sid,
		UserID:    id.UserID,
		Username:  id.Username,
		Role:      id.Role,
		StartedAt: id.StartedAt,
	}
}

// ToUserResponse proyección pública de un usuario (sin digest).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Email:     u.Email,
		LastLogin: u.LastLogin,
	}
}
