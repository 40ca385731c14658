package sqlstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/infrastructure/sqlstore"
	"github.com/jhoicas/inventory-pro/pkg/config"
)

// testStore almacén SQLite temporal con esquema y semillas.
type testStore struct {
	db      *sql.DB
	gw      *sqlstore.Gateway
	metrics *sqlstore.Metrics
	path    string
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, _, err := sqlstore.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T, opts sqlstore.GatewayOptions) *testStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.db")
	db := openTestDB(t, path)
	require.NoError(t, sqlstore.EnsureSchema(context.Background(), db, sqlstore.SQLite,
		sqlstore.SeedOptions{BcryptCost: bcrypt.MinCost}))

	metrics := sqlstore.NewMetrics(prometheus.NewRegistry())
	return &testStore{
		db:      db,
		gw:      sqlstore.NewGateway(db, sqlstore.SQLite, nil, metrics, opts),
		metrics: metrics,
		path:    path,
	}
}

// exec SQL crudo para preparar escenarios que la API no permite (filas basura, tablas faltantes).
func (s *testStore) exec(t *testing.T, query string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(query, args...)
	require.NoError(t, err)
}

func (s *testStore) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow(query, args...).Scan(&n))
	return n
}
