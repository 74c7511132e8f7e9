package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// OpenPostgres abre un pool a Postgres usando pgx (database/sql).
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

// OpenSQLite abre una base SQLite (archivo o ":memory:").
// Una sola conexión: ":memory:" es por conexión y SQLite serializa escrituras de todos modos.
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	db.SetMaxOpenConns(1)

	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}
	return db, nil
}

// Open elige el driver según config ("postgres" | "sqlite").
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		return OpenPostgres(dsn)
	case DriverSQLite:
		return OpenSQLite(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// seqColumns define la columna de orden de inserción por driver. La asigna la base,
// así dos inserts concurrentes nunca comparten seq.
var seqColumns = map[string]string{
	DriverPostgres: "seq BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY",
	DriverSQLite:   "seq INTEGER PRIMARY KEY AUTOINCREMENT",
}

// schemaTemplate es SQL común a Postgres y SQLite; %[1]s es la columna seq del driver.
// Los tiempos se guardan como texto RFC3339 en UTC para que ambos drivers lean lo mismo.
var schemaTemplate = []string{
	`CREATE TABLE IF NOT EXISTS livestock (
		%[1]s,
		id         TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		type       TEXT NOT NULL,
		age        TEXT NOT NULL,
		tag_id     TEXT NOT NULL,
		status     TEXT NOT NULL,
		last_seen  TEXT NOT NULL,
		latitude   DOUBLE PRECISION NULL,
		longitude  DOUBLE PRECISION NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		%[1]s,
		id          TEXT NOT NULL UNIQUE,
		animal_id   TEXT NOT NULL,
		animal_name TEXT NOT NULL,
		type        TEXT NOT NULL,
		message     TEXT NOT NULL,
		time_label  TEXT NOT NULL,
		is_read     BOOLEAN NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		id        INTEGER PRIMARY KEY,
		name      TEXT NOT NULL,
		phone     TEXT NOT NULL,
		email     TEXT NOT NULL,
		farm_name TEXT NOT NULL,
		location  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notification_preferences (
		id              INTEGER PRIMARY KEY,
		boundary_alerts BOOLEAN NOT NULL,
		battery_alerts  BOOLEAN NOT NULL,
		movement_alerts BOOLEAN NOT NULL,
		daily_summary   BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activity_events (
		%[1]s,
		id          TEXT NOT NULL UNIQUE,
		type        TEXT NOT NULL,
		subject_id  TEXT NOT NULL,
		summary     TEXT NOT NULL,
		occurred_at TEXT NOT NULL
	)`,
}

func schema(driver string) ([]string, error) {
	seq, ok := seqColumns[driver]
	if !ok {
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
	out := make([]string, 0, len(schemaTemplate))
	for _, stmt := range schemaTemplate {
		if strings.Contains(stmt, "%[1]s") {
			stmt = fmt.Sprintf(stmt, seq)
		}
		out = append(out, stmt)
	}
	return out, nil
}

// Migrate crea las tablas si no existen. Es idempotente.
// driver es el mismo que recibe Open ("postgres" | "sqlite").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := schema(driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}
	return nil
}

// IsEmpty indica si todavía no hay animales (para sembrar datos demo una sola vez).
func IsEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM livestock`).Scan(&n); err != nil {
		return false, errors.Wrap(err, "count livestock")
	}
	return n == 0, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse time %q", s)
	}
	return t.UTC(), nil
}
