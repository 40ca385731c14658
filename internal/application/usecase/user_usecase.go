package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

const minPasswordLen = 4

// UserUseCase aplica reglas de negocio para usuarios (alta por un administrador y listado).
type UserUseCase struct {
	repo  repository.UserRepository
	authz ports.Authorizer
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, authz ports.Authorizer) *UserUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &UserUseCase{repo: repo, authz: authz}
}

// Create hashea la contraseña con bcrypt y persiste el usuario.
func (uc *UserUseCase) Create(ctx context.Context, sess entity.Session, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddUser); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.Invalid("el usuario es requerido")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.Invalid("la contraseña debe tener al menos %d caracteres", minPasswordLen)
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = entity.RoleStaff
	}
	if !entity.ValidRole(role) {
		return nil, domain.Invalid("rol desconocido %q", in.Role)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Email:        strings.TrimSpace(in.Email),
	}
	if err := uc.repo.Create(ctx, u, sess.Trail(entity.ActionAddUser, "Added user: "+username)); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

// List usuarios sin digest de contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}
