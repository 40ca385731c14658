package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	invrules "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP de artículos (protegido).
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Description  status=all (defecto) | available | out_of_stock | low_stock. low_stock se ordena por cantidad ascendente.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de stock"  default(all)
// @Success      200     {object}  dto.ListResponse[dto.ItemResponse]
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := repository.StockFilter(c.Query("status", string(repository.StockAll)))
	switch filter {
	case repository.StockAll, repository.StockAvailable, repository.StockOutOfStock, repository.StockLow:
	default:
		return fail(c, fiber.StatusBadRequest, "INVALID_STATUS", "status debe ser all, available, out_of_stock o low_stock")
	}
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Description  Con quantity 0 se exige confirm_zero_stock=true.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	sess, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if invrules.EntersDepletedVisibility(in.Quantity) && !in.ConfirmZeroStock {
		return confirmZeroStock(c)
	}
	out, err := h.uc.Create(c.UserContext(), sess, in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	sess, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := idParam(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if invrules.EntersDepletedVisibility(in.Quantity) && !in.ConfirmZeroStock {
		return confirmZeroStock(c)
	}
	out, err := h.uc.Update(c.UserContext(), sess, id, in)
	if err != nil {
		return writeError(c, err, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Security     Bearer
// @Param        id   path  int  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	sess, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := idParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), sess, id); err != nil {
		return writeError(c, err, "artículo no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sweep godoc
// @Summary      Eliminar artículos sin nombre
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Router       /api/items/sweep [post]
func (h *ItemHandler) Sweep(c *fiber.Ctx) error {
	sess, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	n, err := h.uc.SweepInvalid(c.UserContext(), sess)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(dto.SweepResponse{Removed: n})
}

func confirmZeroStock(c *fiber.Ctx) error {
	return fail(c, fiber.StatusConflict, "CONFIRM_ZERO_STOCK",
		"la cantidad es 0: el artículo quedará agotado; reenvíe con confirm_zero_stock=true")
}
