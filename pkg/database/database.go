package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DriverName = "pgx"

// Credentials are the three positional inputs of the exporter.
type Credentials struct {
	ConnString string
	User       string
	Password   string
}

// ParseConfig parses the connection string and applies the positional
// credentials on top of it. A non-empty user or password always wins over
// one embedded in the connection string. The second result lists the
// JDBC-only parameters that were dropped.
func ParseConfig(creds Credentials) (*pgx.ConnConfig, []string, error) {
	connString, dropped := NormalizeConnString(creds.ConnString)
	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid connection string")
	}
	if creds.User != "" {
		cfg.User = creds.User
	}
	if creds.Password != "" {
		cfg.Password = creds.Password
	}
	return cfg, dropped, nil
}

// Open opens a single-connection handle and verifies it with a ping.
// timeout bounds connecting only, not later queries.
func Open(ctx context.Context, creds Credentials, timeout time.Duration, logger logrus.FieldLogger) (*sqlx.DB, error) {
	cfg, err := connConfig(creds, timeout, logger)
	if err != nil {
		return nil, err
	}

	db := sqlx.NewDb(stdlib.OpenDB(*cfg), DriverName)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := ping(ctx, db, timeout); err != nil {
		return nil, errors.Wrapf(err, "db connect failed (host=%s database=%s user=%s)", cfg.Host, cfg.Database, cfg.User)
	}
	return db, nil
}

func connConfig(creds Credentials, timeout time.Duration, logger logrus.FieldLogger) (*pgx.ConnConfig, error) {
	cfg, dropped, err := ParseConfig(creds)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		logger.WithField("params", strings.Join(dropped, ",")).Debug("ignoring JDBC driver-only connection parameters")
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = timeout
	}
	return cfg, nil
}

// ping closes db when it cannot be reached within timeout.
func ping(ctx context.Context, db *sqlx.DB, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return err
	}
	return nil
}

// ParseIdentifier splits "schema.table" or "table" into a quotable identifier.
func ParseIdentifier(name string) (pgx.Identifier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("empty table name")
	}
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return nil, errors.Errorf("invalid table name %q (expected table or schema.table)", name)
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Errorf("invalid table name %q (empty part)", name)
		}
		parts[i] = part
	}
	return pgx.Identifier(parts), nil
}
