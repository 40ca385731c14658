package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	authz ports.Authorizer
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, authz ports.Authorizer) *SupplierUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &SupplierUseCase{repo: repo, authz: authz}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, sess entity.Session, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddSupplier); err != nil {
		return nil, err
	}
	s, err := supplierFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s, sess.Trail(entity.ActionAddSupplier, "Added supplier: "+s.Name)); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor; domain.ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

// Update reemplaza los datos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, sess entity.Session, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionUpdateSupplier); err != nil {
		return nil, err
	}
	s, err := supplierFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.ID = id
	if err := uc.repo.Update(ctx, s, sess.Trail(entity.ActionUpdateSupplier, fmt.Sprintf("Updated supplier ID: %d", id))); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete borra un proveedor sin órdenes de compra.
func (uc *SupplierUseCase) Delete(ctx context.Context, sess entity.Session, id int64) error {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionDeleteSupplier); err != nil {
		return err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteIfUnreferenced(ctx, id, sess.Trail(entity.ActionDeleteSupplier, "Deleted supplier: "+s.Name))
}

// List proveedores por nombre.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

func supplierFromRequest(in dto.SupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre del proveedor es requerido")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.Invalid("email de proveedor inválido %q", email)
		}
	}
	return &entity.Supplier{
		Name:    name,
		Contact: strings.TrimSpace(in.Contact),
		Email:   email,
		Address: strings.TrimSpace(in.Address),
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Email: s.Email, Address: s.Address}
}
