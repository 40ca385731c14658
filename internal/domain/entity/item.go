package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas persistidas (date_added, expiry_date, order_date).
const DateLayout = "2006-01-02"

// Item artículo de inventario.
// Quantity 0 significa agotado; 0 < Quantity <= MinStock significa stock bajo.
type Item struct {
	ID           int64
	Name         string
	CategoryID   int64
	CategoryName string // resuelto por join; vacío si la categoría no existe
	Quantity     int
	Price        decimal.Decimal
	MinStock     int
	Supplier     string
	DateAdded    string
	ExpiryDate   string // opcional, YYYY-MM-DD
	WarehouseID  *int64
	Barcode      string
}

// Valid un artículo sin nombre (nulo o en blanco) se considera registro basura.
func (i Item) Valid() bool {
	return strings.TrimSpace(i.Name) != ""
}

// LineValue cantidad × precio.
func (i Item) LineValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Today fecha actual en el formato persistido.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
