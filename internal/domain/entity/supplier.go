package entity

// Supplier proveedor registrado. Item.Supplier es texto libre y no lo referencia.
type Supplier struct {
	ID      int64
	Name    string // único
	Contact string
	Email   string
	Address string
}
