package dto

// CreatePurchaseOrderRequest entrada para registrar una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID int64 `json:"supplier_id" validate:"required"`
	ItemID     int64 `json:"item_id" validate:"required"`
	Quantity   int   `json:"quantity" validate:"min=1"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID           int64  `json:"id"`
	SupplierID   int64  `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	ItemID       int64  `json:"item_id"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	OrderDate    string `json:"order_date"`
	Status       string `json:"status"`
}
