package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// sha256("admin") en hexadecimal, como lo guardaban las bases heredadas.
const legacyAdminDigest = "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918"

// memUsers repositorio de usuarios en memoria.
type memUsers struct {
	byName  map[string]*entity.User
	touched map[int64]time.Time
	failAll bool
}

func newMemUsers(users ...*entity.User) *memUsers {
	m := &memUsers{byName: map[string]*entity.User{}, touched: map[int64]time.Time{}}
	for _, u := range users {
		m.byName[u.Username] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *entity.User, _ *entity.AuditTrail) error {
	u.ID = int64(len(m.byName) + 1)
	m.byName[u.Username] = u
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if m.failAll {
		return nil, domain.ErrStore
	}
	return m.byName[username], nil
}

func (m *memUsers) List(context.Context) ([]*entity.User, error) { return nil, nil }

func (m *memUsers) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	m.touched[id] = at
	return nil
}

func bcryptDigest(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "inventory-pro-test"}

func TestAuthenticate_FallosIndistinguibles(t *testing.T) {
	repo := newMemUsers(&entity.User{ID: 1, Username: "ana", PasswordHash: bcryptDigest(t, "secreta"), Role: entity.RoleStaff})
	uc := auth.NewAuthUseCase(repo, jwtCfg, nil)
	ctx := context.Background()

	_, wrongPassword := uc.Authenticate(ctx, "ana", "otra")
	_, unknownUser := uc.Authenticate(ctx, "nadie", "secreta")
	repo.failAll = true
	_, storeDown := uc.Authenticate(ctx, "ana", "secreta")

	for _, err := range []error{wrongPassword, unknownUser, storeDown} {
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), err.Error())
	}
	assert.Empty(t, repo.touched)
}

func TestAuthenticate_SesionYUltimoAcceso(t *testing.T) {
	repo := newMemUsers(&entity.User{ID: 7, Username: "ana", PasswordHash: bcryptDigest(t, "secreta"), Role: entity.RoleManager})
	uc := auth.NewAuthUseCase(repo, jwtCfg, nil)

	sess, err := uc.Authenticate(context.Background(), "ana", "secreta")
	require.NoError(t, err)
	assert.EqualValues(t, 7, sess.UserID)
	assert.Equal(t, entity.RoleManager, sess.Role)
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Contains(t, repo.touched, int64(7))

	other, err := uc.Authenticate(context.Background(), "ana", "secreta")
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, other.ID, "cada inicio de sesión es una sesión nueva")
}

func TestAuthenticate_DigestHeredadoSHA256(t *testing.T) {
	repo := newMemUsers(&entity.User{ID: 1, Username: "admin", PasswordHash: legacyAdminDigest, Role: entity.RoleAdmin})
	uc := auth.NewAuthUseCase(repo, jwtCfg, nil)

	sess, err := uc.Authenticate(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)

	_, err = uc.Authenticate(context.Background(), "admin", "Admin")
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestLogin_TokenReconstruyeSesion(t *testing.T) {
	repo := newMemUsers(&entity.User{ID: 3, Username: "ana", PasswordHash: bcryptDigest(t, "secreta"), Role: entity.RoleStaff})
	uc := auth.NewAuthUseCase(repo, jwtCfg, nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)

	sess, err := uc.ParseToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, sess.ID.String())
	assert.EqualValues(t, 3, sess.UserID)
	assert.Equal(t, entity.RoleStaff, sess.Role)

	_, err = uc.ParseToken(out.Token + "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		digest   string
		password string
		want     bool
	}{
		{"bcrypt correcto", bcryptDigest(t, "secreta"), "secreta", true},
		{"bcrypt incorrecto", bcryptDigest(t, "secreta"), "otra", false},
		{"sha256 heredado", legacyAdminDigest, "admin", true},
		{"sha256 heredado en mayúsculas", "8C6976E5B5410415BDE908BD4DEE15DFB167A9C873FC4BB8A81F6F2AB448A918", "admin", true},
		{"sha256 incorrecto", legacyAdminDigest, "root", false},
		{"digest vacío", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.VerifyPassword(tt.digest, tt.password))
		})
	}
}
