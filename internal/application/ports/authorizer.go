package ports

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// Authorizer puerto consultado por los casos de uso antes de cada mutación.
// Devuelve domain.ErrForbidden para rechazar. El rol de la sesión está disponible
// pero hoy ninguna operación se restringe por rol.
type Authorizer interface {
	Authorize(ctx context.Context, sess entity.Session, action string) error
}

// AllowAll autoriza todo.
type AllowAll struct{}

// Authorize nunca rechaza.
func (AllowAll) Authorize(context.Context, entity.Session, string) error { return nil }

// AuthorizerFunc adaptador de función a Authorizer.
type AuthorizerFunc func(ctx context.Context, sess entity.Session, action string) error

// Authorize llama a f.
func (f AuthorizerFunc) Authorize(ctx context.Context, sess entity.Session, action string) error {
	return f(ctx, sess, action)
}
