package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// AuditRepository lectura del registro de auditoría (append-only; las escrituras las hace la pasarela).
type AuditRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
}
