package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

// dialect holds everything that differs between the supported databases.
// Queries are written with "?" placeholders and rebound when needed.
type dialect struct {
	name          string
	numbered      bool // $1, $2, ... instead of ?
	migrations    embed.FS
	migrationsDir string
	migrateDriver func(*sql.DB) (database.Driver, error)
	isUnique      func(error) bool
}

var sqliteDialect = &dialect{
	name:          "sqlite",
	migrations:    sqliteMigrations,
	migrationsDir: "migrations/sqlite",
	migrateDriver: func(db *sql.DB) (database.Driver, error) {
		return migratesqlite.WithInstance(db, &migratesqlite.Config{})
	},
	isUnique: func(err error) bool {
		var se *sqlite.Error
		if !errors.As(err, &se) {
			return false
		}
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	},
}

var postgresDialect = &dialect{
	name:          "postgres",
	numbered:      true,
	migrations:    postgresMigrations,
	migrationsDir: "migrations/postgres",
	migrateDriver: func(db *sql.DB) (database.Driver, error) {
		return migratepgx.WithInstance(db, &migratepgx.Config{})
	},
	isUnique: func(err error) bool {
		var pe *pgconn.PgError
		return errors.As(err, &pe) && pe.Code == "23505"
	},
}

// rebind rewrites ? placeholders for dialects using numbered parameters.
// Queries in this package never contain a literal question mark.
func (d *dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
