package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/store"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	d  *dialect
}

var _ store.Store = (*Store)(nil)

// SQLiteDSN turns a plain file path into a DSN with the pragmas the store
// relies on. Values that already look like a DSN are returned unchanged.
func SQLiteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate" +
		"&_time_format=sqlite"
}

// OpenSQLite opens a SQLite database at path (or DSN).
func OpenSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{db: db, d: sqliteDialect}, nil
}

// OpenPostgres opens a PostgreSQL database through the pgx stdlib driver.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db, d: postgresDialect}, nil
}

// Open dispatches on driver name ("sqlite" or "postgres").
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite", "":
		return OpenSQLite(dsn)
	case "postgres", "pgx":
		return OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewPostgres wraps an already open database handle. It exists so SQL can be
// exercised against a mock driver.
func NewPostgres(db *sql.DB) *Store { return &Store{db: db, d: postgresDialect} }

// Dialect returns the dialect name.
func (s *Store) Dialect() string { return s.d.name }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(&txStore{q: querier{db: tx, d: s.d}}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) q() querier { return querier{db: s.db, d: s.d} }

func (s *Store) Accounts() store.Accounts       { return &accountsRepo{q: s.q()} }
func (s *Store) Vaults() store.Vaults           { return &vaultsRepo{q: s.q()} }
func (s *Store) Credentials() store.Credentials { return &credentialsRepo{q: s.q()} }
func (s *Store) AuditEvents() store.AuditEvents { return &auditEventsRepo{q: s.q()} }

type txStore struct {
	q querier
}

func (t *txStore) Accounts() store.Accounts       { return &accountsRepo{q: t.q} }
func (t *txStore) Vaults() store.Vaults           { return &vaultsRepo{q: t.q} }
func (t *txStore) Credentials() store.Credentials { return &credentialsRepo{q: t.q} }
func (t *txStore) AuditEvents() store.AuditEvents { return &auditEventsRepo{q: t.q} }

// querier runs dialect-rebound queries against a dbtx.
type querier struct {
	db dbtx
	d  *dialect
}

func (q querier) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := q.db.ExecContext(ctx, q.d.rebind(query), args...)
	return res, q.mapErr(err)
}

func (q querier) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := q.db.QueryContext(ctx, q.d.rebind(query), args...)
	return rows, q.mapErr(err)
}

func (q querier) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.d.rebind(query), args...)
}

func (q querier) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case q.d.isUnique(err):
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	default:
		return err
	}
}

// expectOne turns a zero-row mutation into ErrNotFound.
func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func utc(t time.Time) time.Time { return t.UTC() }
