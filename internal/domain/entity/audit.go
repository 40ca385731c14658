package entity

import "time"

// TimestampLayout formato de marcas de tiempo persistidas.
const TimestampLayout = "2006-01-02 15:04:05"

// Acciones auditadas.
const (
	ActionAddItem              = "ADD_ITEM"
	ActionUpdateItem           = "UPDATE_ITEM"
	ActionDeleteItem           = "DELETE_ITEM"
	ActionAddCategory          = "ADD_CATEGORY"
	ActionUpdateCategory       = "UPDATE_CATEGORY"
	ActionDeleteCategory       = "DELETE_CATEGORY"
	ActionCleanDatabase        = "CLEAN_DATABASE"
	ActionAddWarehouse         = "ADD_WAREHOUSE"
	ActionUpdateWarehouse      = "UPDATE_WAREHOUSE"
	ActionAddSupplier          = "ADD_SUPPLIER"
	ActionUpdateSupplier       = "UPDATE_SUPPLIER"
	ActionDeleteSupplier       = "DELETE_SUPPLIER"
	ActionAddPurchaseOrder     = "ADD_PURCHASE_ORDER"
	ActionReceivePurchaseOrder = "RECEIVE_PURCHASE_ORDER"
	ActionAddUser              = "ADD_USER"
)

// AuditLogEntry fila inmutable del registro de auditoría.
type AuditLogEntry struct {
	ID        int64
	UserID    *int64 // nil para acciones del sistema
	Action    string
	Details   string
	Timestamp time.Time
}

// AuditTrail descriptor de auditoría que acompaña a una mutación.
// Si la sentencia principal tiene éxito se agrega una fila con estos datos.
type AuditTrail struct {
	ActorID *int64
	Action  string
	Details string
}
