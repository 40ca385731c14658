package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo registro de auditoría append-only. No existe API de actualización ni borrado.
type AuditRepo struct {
	gw  *Gateway
	now func() time.Time
}

// NewAuditRepository adaptador de lectura del registro de auditoría.
func NewAuditRepository(gw *Gateway) *AuditRepo {
	return gw.audit
}

func (r *AuditRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// record agrega una fila sobre el mismo destino (conexión o transacción) que la mutación auditada.
func (r *AuditRepo) record(ctx context.Context, q Querier, trail *entity.AuditTrail) error {
	stmt := r.gw.dialect.Rebind(`INSERT INTO audit_log (user_id, action, details, timestamp) VALUES (?, ?, ?, ?)`)
	var actor any
	if trail.ActorID != nil {
		actor = *trail.ActorID
	}
	if _, err := q.ExecContext(ctx, stmt, actor, trail.Action, trail.Details, r.clock().Format(entity.TimestampLayout)); err != nil {
		return fmt.Errorf("insert audit_log: %w", err)
	}
	return nil
}

// ListRecent últimas filas de auditoría, más recientes primero.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []*entity.AuditLogEntry
	res := r.gw.Query(ctx, `
		SELECT id, user_id, action, COALESCE(details, ''), timestamp
		FROM audit_log ORDER BY id DESC LIMIT ?`, []any{limit},
		func(rows *sql.Rows) error {
			for rows.Next() {
				var (
					e     entity.AuditLogEntry
					actor sql.NullInt64
					ts    string
				)
				if err := rows.Scan(&e.ID, &actor, &e.Action, &e.Details, &ts); err != nil {
					return err
				}
				if actor.Valid {
					id := actor.Int64
					e.UserID = &id
				}
				// Filas heredadas pueden tener otro formato; se deja la hora cero.
				e.Timestamp, _ = time.ParseInLocation(entity.TimestampLayout, ts, time.Local)
				out = append(out, &e)
			}
			return nil
		}, nil)
	if !res.OK() {
		return nil, fmt.Errorf("list audit_log: %w", res.Err)
	}
	return out, nil
}
