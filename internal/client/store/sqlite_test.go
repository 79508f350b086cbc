package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte("v1")))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestGet_Missing_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte("1")))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte("1"), m["a"])
	assert.Equal(t, []byte("2"), m["b"])
}

func TestStore_TokenAccessors(t *testing.T) {
	s := New(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "tok123"))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok123", tok)

	require.NoError(t, s.ClearToken(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestStore_SetSession_WritesBothKeys(t *testing.T) {
	db := setupDB(t)
	s := &Store{repo: NewSQLiteRepository(db), db: db}
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "tok123", "ES"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)
	lang, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ES", lang)
}

func TestStore_SetSession_BareRepository(t *testing.T) {
	s := New(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "tok", "AR"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestStore_LanguageAccessors(t *testing.T) {
	s := New(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	lang, err := s.Language(ctx)
	require.NoError(t, err)
	require.Empty(t, lang)

	require.NoError(t, s.SetLanguage(ctx, "AR"))
	lang, err = s.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "AR", lang)
}
