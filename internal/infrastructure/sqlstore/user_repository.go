package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password, role, COALESCE(email, ''), COALESCE(last_login, '')`

// UserRepo implementación del puerto UserRepository.
type UserRepo struct {
	gw *Gateway
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(gw *Gateway) *UserRepo {
	return &UserRepo{gw: gw}
}

// Create persiste un nuevo usuario; domain.ErrDuplicate si el username existe.
func (r *UserRepo) Create(ctx context.Context, u *entity.User, trail *entity.AuditTrail) error {
	res := r.gw.Query(ctx, `INSERT INTO users (username, password, role, email) VALUES (?, ?, ?, ?) RETURNING id`,
		[]any{u.Username, u.PasswordHash, u.Role, nullString(u.Email)}, scanID(&u.ID), trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", res.Err)
	}
	return nil
}

// FindByUsername obtiene un usuario por username (nil, nil si no existe).
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	list, err := r.list(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List usuarios por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	list, err := r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// TouchLastLogin registra la hora del último inicio de sesión.
func (r *UserRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	res := r.gw.Exec(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, []any{at.Format(entity.TimestampLayout), id}, nil)
	if !res.OK() {
		return fmt.Errorf("update last_login: %w", res.Err)
	}
	return nil
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	var out []*entity.User
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var (
				u         entity.User
				lastLogin string
			)
			if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Email, &lastLogin); err != nil {
				return err
			}
			if t, err := time.ParseInLocation(entity.TimestampLayout, lastLogin, time.Local); err == nil {
				u.LastLogin = &t
			}
			out = append(out, &u)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}
