package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo  repository.WarehouseRepository
	authz ports.Authorizer
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, authz ports.Authorizer) *WarehouseUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &WarehouseUseCase{repo: repo, authz: authz}
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, sess entity.Session, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddWarehouse); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la bodega es requerido")
	}
	w := &entity.Warehouse{Name: name, Location: strings.TrimSpace(in.Location)}
	if err := uc.repo.Create(ctx, w, sess.Trail(entity.ActionAddWarehouse, "Added warehouse: "+name)); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// GetByID obtiene una bodega por ID; domain.ErrNotFound si no existe.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(w), nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, sess entity.Session, id int64, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionUpdateWarehouse); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la bodega es requerido")
	}
	w := &entity.Warehouse{ID: id, Name: name, Location: strings.TrimSpace(in.Location)}
	if err := uc.repo.Update(ctx, w, sess.Trail(entity.ActionUpdateWarehouse, fmt.Sprintf("Updated warehouse ID: %d", id))); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// List bodegas por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{ID: w.ID, Name: w.Name, Location: w.Location}
}
