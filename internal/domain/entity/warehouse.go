package entity

// DefaultWarehouseName bodega sembrada por el esquema.
const DefaultWarehouseName = "Main Warehouse"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
type Warehouse struct {
	ID       int64
	Name     string // único
	Location string
}
