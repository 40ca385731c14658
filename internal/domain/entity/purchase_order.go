package entity

// Estados de una orden de compra.
const (
	POStatusPending   = "pending"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder pedido a un proveedor por un artículo.
type PurchaseOrder struct {
	ID           int64
	SupplierID   int64
	SupplierName string
	ItemID       int64
	ItemName     string
	Quantity     int
	OrderDate    string
	Status       string
}
