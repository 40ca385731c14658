package dto

import "github.com/shopspring/decimal"

// ItemRequest entrada para crear o actualizar un artículo.
// ConfirmZeroStock es obligatorio (en la capa HTTP) cuando Quantity es 0.
type ItemRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID       int64           `json:"category_id" validate:"required"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	Price            decimal.Decimal `json:"price"`
	MinStock         int             `json:"min_stock" validate:"min=0"`
	Supplier         string          `json:"supplier"`
	Barcode          string          `json:"barcode"`
	ExpiryDate       string          `json:"expiry_date"` // YYYY-MM-DD, opcional
	WarehouseID      *int64          `json:"warehouse_id"`
	ConfirmZeroStock bool            `json:"confirm_zero_stock"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"min_stock"`
	Supplier     string          `json:"supplier"`
	Barcode      string          `json:"barcode"`
	DateAdded    string          `json:"date_added"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	WarehouseID  *int64          `json:"warehouse_id,omitempty"`
	Status       string          `json:"status"` // DEPLETED | LOW | NORMAL
}

// SweepResponse resultado del barrido de registros inválidos.
type SweepResponse struct {
	Removed int64 `json:"removed"`
}
