package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // driver "sqlite" (Go puro, sin cgo)

	"github.com/jhoicas/inventory-pro/pkg/config"
)

// Open abre el almacén configurado y verifica la conexión.
// SQLite es el destino por defecto (archivo local); PostgreSQL es opcional.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, Dialect, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, Dialect{}, err
		}
		if err := ping(ctx, db); err != nil {
			return nil, Dialect{}, err
		}
		return db, Postgres, nil
	case config.DriverSQLite, "":
		db, err := sql.Open("sqlite", cfg.ConnectionString())
		if err != nil {
			return nil, Dialect{}, fmt.Errorf("abrir sqlite: %w", err)
		}
		if err := ping(ctx, db); err != nil {
			return nil, Dialect{}, err
		}
		return db, SQLite, nil
	default:
		return nil, Dialect{}, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
}

func ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping DB: %w", err)
	}
	return nil
}

// openPostgres usa pgx detrás de database/sql para compartir la pasarela con SQLite.
func openPostgres(cfg config.DBConfig) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Forzar IPv4 en el dial: Docker suele no tener IPv6.
	connCfg.DialFunc = func(ctx context.Context, network, addr string) (net.Conn, error) {
		dialer := &net.Dialer{}
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		if ipv4, err := resolveIPv4(ctx, host); err == nil {
			return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
		}
		return dialer.DialContext(ctx, network, addr)
	}

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal en cada conexión.
	db := stdlib.OpenDB(*connCfg, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}))
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)
	return db, nil
}

// resolveIPv4 resuelve un hostname a su primera dirección IPv4.
func resolveIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("es IPv6")
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("no hay IPv4")
	}
	return ips[0].String(), nil
}
