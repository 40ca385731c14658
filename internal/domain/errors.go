package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCategoryInUse      = errors.New("categoría con artículos asociados")
	// ErrStore marca cualquier fallo del almacén reportado por la pasarela de consultas.
	ErrStore = errors.New("error de base de datos")
)

// CategoryInUseError rechazo de borrado: la categoría aún tiene artículos.
// errors.Is(err, ErrCategoryInUse) es verdadero.
type CategoryInUseError struct {
	CategoryID   int64
	CategoryName string
	ItemCount    int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("no se puede eliminar la categoría '%s': tiene %d artículos asociados", e.CategoryName, e.ItemCount)
}

func (e *CategoryInUseError) Unwrap() error { return ErrCategoryInUse }

// Invalid construye un error de validación legible que envuelve ErrInvalidInput.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
