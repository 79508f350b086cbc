// Package store persists the client's local state: the bearer token and the
// language preference, each under its well-known key. The session controller
// is the only writer of the token; every other component reads.
package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/saytruth/saytruth/internal/client/store/migrations"
	"github.com/saytruth/saytruth/internal/dbx"
)

// Well-known local keys, mirrored from the web client so the two clients can
// describe the same persisted state.
const (
	KeyAuthToken = "authToken"
	KeyLanguage  = "appLanguage"
)

// Store wraps a Repository with typed accessors for the known keys.
type Store struct {
	repo Repository
	db   *sql.DB // nil when constructed over a bare repository
}

func New(repo Repository) *Store {
	return &Store{repo: repo}
}

// Open initializes the local database at dsn, runs migrations and returns a
// ready Store together with the underlying handle (the caller owns Close).
func Open(ctx context.Context, dsn string) (*Store, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return &Store{repo: NewSQLiteRepository(db), db: db}, db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Token returns the persisted bearer token, "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyAuthToken, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyAuthToken)
}

// SetSession persists the token and the language preference together, in
// one transaction when the store owns the database handle. A crash can then
// never pair a fresh token with a stale language.
func (s *Store) SetSession(ctx context.Context, token, lang string) error {
	if s.db == nil {
		if err := s.repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return s.repo.Set(ctx, KeyLanguage, []byte(lang))
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyLanguage, []byte(lang))
	})
}

// Language returns the persisted language tag, "" when none was saved yet.
func (s *Store) Language(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	return s.repo.Set(ctx, KeyLanguage, []byte(lang))
}
