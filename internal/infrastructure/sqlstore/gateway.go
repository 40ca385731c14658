package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

// Querier lo que comparten *sql.Conn y *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Result resultado etiquetado de la pasarela. Err != nil envuelve domain.ErrStore.
type Result struct {
	RowsAffected int64
	Err          error
}

// OK verdadero si la sentencia se ejecutó sin error.
func (r Result) OK() bool { return r.Err == nil }

// ScanFunc consume las filas de una consulta; la pasarela cierra rows al terminar.
type ScanFunc func(rows *sql.Rows) error

// GatewayOptions comportamiento opcional de la pasarela.
type GatewayOptions struct {
	// StrictAudit ejecuta la sentencia y su auditoría en una sola transacción.
	// Por defecto la auditoría es best-effort y nunca revierte la mutación.
	StrictAudit bool
}

// Gateway punto único de acceso al almacén.
// Cada llamada toma una conexión dedicada y la libera al terminar, con o sin error.
// Los fallos se registran en el canal de operador y se devuelven etiquetados, nunca como panic.
type Gateway struct {
	db      *sql.DB
	tx      *sql.Tx // no nil si la pasarela está atada a una transacción
	dialect Dialect
	log     *logger.Logger
	metrics *Metrics
	audit   *AuditRepo
	opts    GatewayOptions
}

// NewGateway construye la pasarela sobre db.
func NewGateway(db *sql.DB, dialect Dialect, log *logger.Logger, metrics *Metrics, opts GatewayOptions) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	g := &Gateway{db: db, dialect: dialect, log: log.Named("gateway"), metrics: metrics, opts: opts}
	g.audit = &AuditRepo{gw: g}
	return g
}

// Dialect dialecto en uso.
func (g *Gateway) Dialect() Dialect { return g.dialect }

// Exec ejecuta una sentencia sin filas de retorno. Si trail no es nil y la sentencia
// tiene éxito, se agrega la fila de auditoría.
func (g *Gateway) Exec(ctx context.Context, stmt string, args []any, trail *entity.AuditTrail) Result {
	return g.execute(ctx, "exec", stmt, args, nil, trail, false)
}

// ExecIfAffected igual que Exec, pero la auditoría solo se agrega si la sentencia
// afectó al menos una fila (UPDATE/DELETE condicionados que pueden no coincidir).
func (g *Gateway) ExecIfAffected(ctx context.Context, stmt string, args []any, trail *entity.AuditTrail) Result {
	return g.execute(ctx, "exec", stmt, args, nil, trail, true)
}

// Query ejecuta una consulta y entrega las filas a scan. trail es opcional
// (INSERT ... RETURNING se audita igual que Exec).
func (g *Gateway) Query(ctx context.Context, stmt string, args []any, scan ScanFunc, trail *entity.AuditTrail) Result {
	return g.execute(ctx, "query", stmt, args, scan, trail, false)
}

func (g *Gateway) execute(ctx context.Context, kind, stmt string, args []any, scan ScanFunc, trail *entity.AuditTrail, onlyIfAffected bool) (res Result) {
	start := time.Now()
	stmt = g.dialect.Rebind(stmt)

	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("panic: %v", r)}
		}
		if res.Err != nil && !errors.Is(res.Err, domain.ErrStore) {
			res.Err = fmt.Errorf("%w: %w", domain.ErrStore, res.Err)
		}
		if res.Err != nil {
			g.log.Error().Err(res.Err).Str("kind", kind).Str("stmt", stmt).Msg("Database error")
		}
		g.metrics.observe(kind, start, res.Err)
	}()

	// Dentro de una transacción la auditoría comparte su destino.
	if g.tx != nil {
		res = g.run(ctx, g.tx, stmt, args, scan)
		if res.Err == nil && audits(trail, res, onlyIfAffected) {
			if err := g.audit.record(ctx, g.tx, trail); err != nil {
				res.Err = fmt.Errorf("audit: %w", err)
			}
		}
		return res
	}

	conn, err := g.db.Conn(ctx)
	if err != nil {
		return Result{Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Close()

	if trail != nil && g.opts.StrictAudit {
		return g.runAudited(ctx, conn, stmt, args, scan, trail, onlyIfAffected)
	}

	res = g.run(ctx, conn, stmt, args, scan)
	if res.Err == nil && audits(trail, res, onlyIfAffected) {
		if err := g.audit.record(ctx, conn, trail); err != nil {
			g.metrics.auditFailures.Inc()
			g.log.Warn().Err(err).Str("action", trail.Action).Msg("no se pudo registrar la auditoría")
		}
	}
	return res
}

// runAudited sentencia + auditoría en una transacción sobre la misma conexión.
func (g *Gateway) runAudited(ctx context.Context, conn *sql.Conn, stmt string, args []any, scan ScanFunc, trail *entity.AuditTrail, onlyIfAffected bool) Result {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{Err: fmt.Errorf("begin transaction: %w", err)}
	}
	defer func() { _ = tx.Rollback() }()

	res := g.run(ctx, tx, stmt, args, scan)
	if res.Err != nil {
		return res
	}
	if audits(trail, res, onlyIfAffected) {
		if err := g.audit.record(ctx, tx, trail); err != nil {
			g.metrics.auditFailures.Inc()
			return Result{Err: fmt.Errorf("audit: %w", err)}
		}
	}
	if err := tx.Commit(); err != nil {
		return Result{Err: fmt.Errorf("commit transaction: %w", err)}
	}
	return res
}

// audits indica si una sentencia exitosa debe dejar fila de auditoría.
func audits(trail *entity.AuditTrail, res Result, onlyIfAffected bool) bool {
	return trail != nil && (!onlyIfAffected || res.RowsAffected > 0)
}

func (g *Gateway) run(ctx context.Context, q Querier, stmt string, args []any, scan ScanFunc) Result {
	if scan == nil {
		r, err := q.ExecContext(ctx, stmt, args...)
		if err != nil {
			return Result{Err: err}
		}
		n, _ := r.RowsAffected()
		return Result{RowsAffected: n}
	}

	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return Result{Err: err}
	}
	defer rows.Close()
	if err := scan(rows); err != nil {
		return Result{Err: err}
	}
	if err := rows.Err(); err != nil {
		return Result{Err: err}
	}
	return Result{}
}

// RunInTx ejecuta fn con una pasarela atada a una transacción; Commit si fn no falla.
// Las auditorías emitidas dentro de fn viajan en la misma transacción.
func (g *Gateway) RunInTx(ctx context.Context, fn func(tx *Gateway) error) (err error) {
	if g.tx != nil {
		return fn(g)
	}
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		g.log.Error().Err(err).Msg("Database error")
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrStore, err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("%w: panic: %v", domain.ErrStore, r)
			g.log.Error().Err(err).Msg("Database error")
		}
	}()

	bound := *g
	bound.tx = tx
	if err := fn(&bound); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		g.log.Error().Err(err).Msg("Database error")
		return fmt.Errorf("%w: commit transaction: %w", domain.ErrStore, err)
	}
	return nil
}
