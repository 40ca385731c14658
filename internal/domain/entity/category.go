package entity

// Category agrupa artículos. No se puede borrar mientras algún artículo la referencie.
type Category struct {
	ID          int64
	Name        string // único
	Description string
}
