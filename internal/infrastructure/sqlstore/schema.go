package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// tables sentencias de creación en orden de dependencia.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{PK}},
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'staff',
		email TEXT,
		last_login TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id {{PK}},
		user_id INTEGER REFERENCES users(id),
		action TEXT NOT NULL,
		details TEXT,
		timestamp TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id {{PK}},
		name TEXT UNIQUE NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id {{PK}},
		name TEXT UNIQUE NOT NULL,
		location TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id {{PK}},
		name TEXT UNIQUE NOT NULL,
		contact TEXT,
		email TEXT,
		address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id {{PK}},
		name TEXT,
		category_id INTEGER REFERENCES categories(id),
		quantity INTEGER NOT NULL DEFAULT 0,
		price {{MONEY}} NOT NULL DEFAULT 0,
		min_stock INTEGER NOT NULL DEFAULT 0,
		supplier TEXT,
		date_added TEXT,
		expiry_date TEXT,
		warehouse_id INTEGER REFERENCES warehouses(id),
		barcode TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id {{PK}},
		supplier_id INTEGER REFERENCES suppliers(id),
		item_id INTEGER REFERENCES items(id) ON DELETE SET NULL,
		quantity INTEGER NOT NULL,
		order_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	)`,
}

// column columna agregada después de la primera versión del esquema.
type column struct {
	table, name, decl string
}

// migrations columnas que faltan en archivos creados por versiones anteriores.
// Sólo se agregan columnas; nunca se borra ni renombra nada.
var migrations = []column{
	{"users", "email", "TEXT"},
	{"users", "last_login", "TEXT"},
	{"items", "expiry_date", "TEXT"},
	{"items", "warehouse_id", "INTEGER REFERENCES warehouses(id)"},
	{"items", "barcode", "TEXT"},
}

// SeedOptions datos iniciales.
type SeedOptions struct {
	AdminPassword string // por defecto "admin"
	BcryptCost    int    // por defecto bcrypt.DefaultCost
}

// AdminUsername usuario administrador sembrado.
const (
	AdminUsername = "admin"
	adminEmail    = "admin@inventorypro.com"
)

// EnsureSchema crea tablas faltantes, agrega columnas nuevas y siembra admin y bodega principal.
// Es idempotente: se ejecuta en cada arranque.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect, seed SeedOptions) error {
	for _, stmt := range tables {
		if _, err := db.ExecContext(ctx, d.ddl(stmt)); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, m := range migrations {
		cols, err := tableColumns(ctx, db, d, m.table)
		if err != nil {
			return err
		}
		if cols[m.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, m.name, m.decl)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s.%s: %w", m.table, m.name, err)
		}
	}

	return seedDefaults(ctx, db, d, seed)
}

// tableColumns nombres de columnas existentes de una tabla.
func tableColumns(ctx context.Context, db *sql.DB, d Dialect, table string) (map[string]bool, error) {
	query := `SELECT name FROM pragma_table_info(?)`
	if d.Name == Postgres.Name {
		query = `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = ?`
	}
	rows, err := db.QueryContext(ctx, d.Rebind(query), table)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("inspect %s: %w", table, err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

func seedDefaults(ctx context.Context, db *sql.DB, d Dialect, seed SeedOptions) error {
	var admins int
	if err := db.QueryRowContext(ctx, d.Rebind(`SELECT COUNT(*) FROM users WHERE username = ?`), AdminUsername).Scan(&admins); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if admins == 0 {
		password := seed.AdminPassword
		if password == "" {
			password = "admin"
		}
		cost := seed.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		_, err = db.ExecContext(ctx, d.Rebind(`
			INSERT INTO users (username, password, role, email) VALUES (?, ?, ?, ?)
			ON CONFLICT (username) DO NOTHING`),
			AdminUsername, string(hash), entity.RoleAdmin, adminEmail)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	_, err := db.ExecContext(ctx, d.Rebind(`
		INSERT INTO warehouses (name, location) VALUES (?, ?)
		ON CONFLICT (name) DO NOTHING`),
		entity.DefaultWarehouseName, "HQ")
	if err != nil {
		return fmt.Errorf("seed warehouse: %w", err)
	}
	return nil
}
