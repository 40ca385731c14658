package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CategoryInUseResponse cuerpo del 409 al borrar una categoría con artículos.
type CategoryInUseResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ItemCount int    `json:"item_count"`
}

// ListResponse envoltorio genérico de listados (sin paginación: los volúmenes son de escritorio).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye el envoltorio; nunca serializa "items": null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
