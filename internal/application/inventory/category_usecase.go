package inventory

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

// CategoryUseCase CRUD de categorías con protección de borrado.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	authz ports.Authorizer
}

// NewCategoryUseCase construye el caso de uso. authz nil equivale a ports.AllowAll.
func NewCategoryUseCase(repo repository.CategoryRepository, authz ports.Authorizer) *CategoryUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &CategoryUseCase{repo: repo, authz: authz}
}

// List categorías por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Create crea una categoría; el nombre es obligatorio y único.
func (uc *CategoryUseCase) Create(ctx context.Context, sess entity.Session, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddCategory); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la categoría es requerido")
	}
	c := &entity.Category{Name: name, Description: strings.TrimSpace(in.Description)}
	if err := uc.repo.Create(ctx, c, sess.Trail(entity.ActionAddCategory, "Added category: "+name)); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Update renombra o cambia la descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, sess entity.Session, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionUpdateCategory); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la categoría es requerido")
	}
	c := &entity.Category{ID: id, Name: name, Description: strings.TrimSpace(in.Description)}
	if err := uc.repo.Update(ctx, c, sess.Trail(entity.ActionUpdateCategory, fmt.Sprintf("Updated category ID: %d", id))); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Delete falla con *domain.CategoryInUseError mientras algún artículo la referencie;
// en ese caso no se modifica nada.
func (uc *CategoryUseCase) Delete(ctx context.Context, sess entity.Session, id int64) error {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionDeleteCategory); err != nil {
		return err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteIfUnused(ctx, id, sess.Trail(entity.ActionDeleteCategory, "Deleted category: "+c.Name))
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
