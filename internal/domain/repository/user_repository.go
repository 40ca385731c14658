package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, trail *entity.AuditTrail) error
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
