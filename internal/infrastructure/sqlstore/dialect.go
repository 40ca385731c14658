package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect diferencias mínimas de SQL entre SQLite y PostgreSQL.
// Las sentencias se escriben con placeholders '?' y se reescriben al ejecutar.
type Dialect struct {
	Name       string
	PrimaryKey string // columna id autoincremental
	Money      string // tipo de columnas monetarias
	positional bool   // $1, $2, ... en lugar de ?
}

var (
	SQLite   = Dialect{Name: "sqlite", PrimaryKey: "INTEGER PRIMARY KEY AUTOINCREMENT", Money: "REAL"}
	Postgres = Dialect{Name: "postgres", PrimaryKey: "BIGSERIAL PRIMARY KEY", Money: "NUMERIC(14,2)", positional: true}
)

// Rebind reemplaza '?' por '$n' en PostgreSQL. No toca '?' dentro de literales.
func (d Dialect) Rebind(query string) string {
	if !d.positional || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ddl expande los marcadores {{PK}} y {{MONEY}} de las sentencias de esquema.
func (d Dialect) ddl(stmt string) string {
	return strings.NewReplacer("{{PK}}", d.PrimaryKey, "{{MONEY}}", d.Money).Replace(stmt)
}
