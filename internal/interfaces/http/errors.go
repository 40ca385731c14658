package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/domain"
)

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func unauthorized(c *fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión requerida")
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// writeError traduce los errores de dominio a la respuesta HTTP.
// notFoundMsg personaliza el 404 por recurso.
func writeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var inUse *domain.CategoryInUseError
	switch {
	case errors.As(err, &inUse):
		return c.Status(fiber.StatusConflict).JSON(dto.CategoryInUseResponse{
			Code:      "CATEGORY_IN_USE",
			Message:   inUse.Error(),
			ItemCount: inUse.ItemCount,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", notFoundMsg)
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "ya existe un registro con ese nombre")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "usuario o contraseña incorrectos")
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c)
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado al recurso")
	case errors.Is(err, domain.ErrStore):
		// El detalle ya quedó en el log de la pasarela.
		return fail(c, fiber.StatusInternalServerError, "STORE_ERROR", "error de base de datos")
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// idParam lee :id como entero positivo.
func idParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_ID", "id debe ser un entero positivo")
}
