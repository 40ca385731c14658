package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	invrules "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// ItemUseCase operaciones de dominio sobre artículos: listados por estado de stock,
// alta/edición/baja validadas y auditadas, y barrido de registros inválidos.
type ItemUseCase struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	warehouses repository.WarehouseRepository
	authz      ports.Authorizer
	now        func() time.Time
}

// NewItemUseCase construye el caso de uso. authz nil equivale a ports.AllowAll.
func NewItemUseCase(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	warehouses repository.WarehouseRepository,
	authz ports.Authorizer,
) *ItemUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &ItemUseCase{
		items:      items,
		categories: categories,
		warehouses: warehouses,
		authz:      authz,
		now:        time.Now,
	}
}

// ── Consultas ────────────────────────────────────────────────────────────────

// List artículos válidos según el filtro de stock.
func (uc *ItemUseCase) List(ctx context.Context, filter repository.StockFilter) ([]dto.ItemResponse, error) {
	items, err := uc.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// ListAvailable cantidad > 0, por nombre.
func (uc *ItemUseCase) ListAvailable(ctx context.Context) ([]dto.ItemResponse, error) {
	return uc.List(ctx, repository.StockAvailable)
}

// ListOutOfStock cantidad = 0, por nombre.
func (uc *ItemUseCase) ListOutOfStock(ctx context.Context) ([]dto.ItemResponse, error) {
	return uc.List(ctx, repository.StockOutOfStock)
}

// ListLowStock 0 < cantidad <= mínimo, por cantidad ascendente.
func (uc *ItemUseCase) ListLowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	return uc.List(ctx, repository.StockLow)
}

// GetByID obtiene un artículo; domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	it, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToItemResponse(it)
	return &resp, nil
}

// ── Mutaciones ───────────────────────────────────────────────────────────────

// Create valida y persiste un artículo con fecha de alta de hoy.
func (uc *ItemUseCase) Create(ctx context.Context, sess entity.Session, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddItem); err != nil {
		return nil, err
	}
	item, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	item.DateAdded = entity.Today(uc.now())

	trail := sess.Trail(entity.ActionAddItem, "Added item: "+item.Name)
	if err := uc.items.Create(ctx, item, trail); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, item.ID)
}

// Update reemplaza los campos editables de un artículo existente.
func (uc *ItemUseCase) Update(ctx context.Context, sess entity.Session, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionUpdateItem); err != nil {
		return nil, err
	}
	current, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.DateAdded = current.DateAdded

	trail := sess.Trail(entity.ActionUpdateItem, fmt.Sprintf("Updated item ID: %d", id))
	if err := uc.items.Update(ctx, item, trail); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete borrado físico auditado.
func (uc *ItemUseCase) Delete(ctx context.Context, sess entity.Session, id int64) error {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionDeleteItem); err != nil {
		return err
	}
	current, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(ctx, id, sess.Trail(entity.ActionDeleteItem, "Deleted item: "+current.Name))
}

// SweepInvalid elimina artículos sin nombre. Idempotente: una segunda pasada borra 0.
// Se ejecuta al arrancar con entity.SystemSession().
func (uc *ItemUseCase) SweepInvalid(ctx context.Context, sess entity.Session) (int64, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionCleanDatabase); err != nil {
		return 0, err
	}
	return uc.items.DeleteInvalid(ctx, sess.Trail(entity.ActionCleanDatabase, "Removed invalid item records"))
}

// validate comprueba la entrada antes de cualquier escritura.
func (uc *ItemUseCase) validate(ctx context.Context, in dto.ItemRequest) (*entity.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre del artículo es requerido")
	}
	if in.CategoryID == 0 {
		return nil, domain.Invalid("seleccione una categoría")
	}
	if in.Quantity < 0 {
		return nil, domain.Invalid("la cantidad no puede ser negativa")
	}
	if in.MinStock < 0 {
		return nil, domain.Invalid("el stock mínimo no puede ser negativo")
	}
	if in.Price.IsNegative() {
		return nil, domain.Invalid("el precio no puede ser negativo")
	}
	expiry := strings.TrimSpace(in.ExpiryDate)
	if expiry != "" {
		if _, err := time.Parse(entity.DateLayout, expiry); err != nil {
			return nil, domain.Invalid("fecha de vencimiento inválida %q (use AAAA-MM-DD)", expiry)
		}
	}

	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.Invalid("la categoría %d no existe", in.CategoryID)
	}
	if in.WarehouseID != nil {
		w, err := uc.warehouses.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, domain.Invalid("la bodega %d no existe", *in.WarehouseID)
		}
	}

	return &entity.Item{
		Name:        name,
		CategoryID:  in.CategoryID,
		Quantity:    in.Quantity,
		Price:       in.Price.Round(2),
		MinStock:    in.MinStock,
		Supplier:    strings.TrimSpace(in.Supplier),
		Barcode:     strings.TrimSpace(in.Barcode),
		ExpiryDate:  expiry,
		WarehouseID: in.WarehouseID,
	}, nil
}

// ToItemResponse proyección de un artículo con su clasificación de stock.
func ToItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		CategoryID:   it.CategoryID,
		CategoryName: it.CategoryName,
		Quantity:     it.Quantity,
		Price:        it.Price,
		MinStock:     it.MinStock,
		Supplier:     it.Supplier,
		Barcode:      it.Barcode,
		DateAdded:    it.DateAdded,
		ExpiryDate:   it.ExpiryDate,
		WarehouseID:  it.WarehouseID,
		Status:       string(invrules.Classify(it.Quantity, it.MinStock)),
	}
}

// ToItemResponses proyecta una lista; nunca devuelve nil.
func ToItemResponses(items []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemResponse(it))
	}
	return out
}
