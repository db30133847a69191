package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/migrations"
)

const credentialFieldsTable = "credential_fields"

type sqliteFieldStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteCache opens (or creates) the SQLite credential database at dsn,
// runs pending schema migrations, and returns a [CredentialCache] backed
// by it.
func NewSQLiteCache(dsn string, log *logger.Logger) (CredentialCache, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrStorage, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: ping sqlite: %v", ErrStorage, err)
	}

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrStorage, err)
	}

	log.Info().Str("dsn", dsn).Msg("sqlite credential cache ready")
	return newCache(&sqliteFieldStore{db: db, logger: log}), nil
}

// NewSQLiteCacheWithDB wraps an already-open database without running
// migrations. Used by tests to inject a mocked connection.
func NewSQLiteCacheWithDB(db *sql.DB, log *logger.Logger) CredentialCache {
	return newCache(&sqliteFieldStore{db: db, logger: log})
}

func (s *sqliteFieldStore) set(ctx context.Context, name, value string) error {
	query, args, err := sq.
		Insert(credentialFieldsTable).
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert: %v", ErrStorage, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert %s: %v", ErrStorage, name, err)
	}
	return nil
}

func (s *sqliteFieldStore) get(ctx context.Context, name string) (string, error) {
	query, args, err := sq.
		Select("value").
		From(credentialFieldsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: build select: %v", ErrStorage, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrFieldNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: select %s: %v", ErrStorage, name, err)
	}
	return value, nil
}

func (s *sqliteFieldStore) delete(ctx context.Context, name string) error {
	query, args, err := sq.
		Delete(credentialFieldsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete: %v", ErrStorage, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, name, err)
	}
	return nil
}
