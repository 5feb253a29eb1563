package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-manager/internal/domains/book"
	rediscache "book-manager/internal/infrastructure/cache"
	"book-manager/pkg/cache"
)

func newCachedRepo(t *testing.T) (book.Repository, book.Repository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	rc := rediscache.NewRedisCache(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	inner := NewMemoryRepository()
	return NewCachedRepository(inner, rc, time.Minute), inner, srv
}

func TestCachedRepository_FindByIDPopulatesCache(t *testing.T) {
	repo, inner, srv := newCachedRepo(t)
	ctx := context.Background()

	b := newBook(uuid.New(), "Dune")
	require.NoError(t, repo.Create(ctx, b))
	assert.False(t, srv.Exists(book.CacheKey(b.ID)))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.True(t, srv.Exists(book.CacheKey(b.ID)))

	// Ghi thẳng vào inner store: cached read vẫn trả giá trị cũ
	stale := *b
	stale.Title = "changed behind the cache"
	require.NoError(t, inner.Update(ctx, &stale))

	got, err = repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.True(t, got.PublicationDate.Equal(b.PublicationDate))
	assert.Equal(t, b.Owner, got.Owner)
}

func TestCachedRepository_UpdateInvalidates(t *testing.T) {
	repo, _, srv := newCachedRepo(t)
	ctx := context.Background()

	b := newBook(uuid.New(), "Dune")
	require.NoError(t, repo.Create(ctx, b))
	_, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)

	changed := *b
	changed.Title = "Dune Messiah"
	require.NoError(t, repo.Update(ctx, &changed))
	assert.False(t, srv.Exists(book.CacheKey(b.ID)))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
}

func TestCachedRepository_DeleteInvalidates(t *testing.T) {
	repo, _, srv := newCachedRepo(t)
	ctx := context.Background()

	b := newBook(uuid.New(), "Dune")
	require.NoError(t, repo.Create(ctx, b))
	_, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.False(t, srv.Exists(book.CacheKey(b.ID)))

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestCachedRepository_NotFoundIsNotCached(t *testing.T) {
	repo, _, srv := newCachedRepo(t)

	id := uuid.New()
	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.False(t, srv.Exists(book.CacheKey(id)))
}

type brokenCache struct{ cache.Noop }

var errCacheDown = errors.New("cache down")

func (brokenCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errCacheDown
}

func (brokenCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errCacheDown
}

func (brokenCache) Delete(context.Context, ...string) error {
	return errCacheDown
}

func TestCachedRepository_CacheErrorsAreIgnored(t *testing.T) {
	repo := NewCachedRepository(NewMemoryRepository(), brokenCache{}, 0)
	ctx := context.Background()

	b := newBook(uuid.New(), "Dune")
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	changed := *b
	changed.Title = "Dune Messiah"
	require.NoError(t, repo.Update(ctx, &changed))
	require.NoError(t, repo.Delete(ctx, b.ID))
}

func TestCachedRepository_StaleEntryClearedByWrite(t *testing.T) {
	repo, inner, srv := newCachedRepo(t)
	ctx := context.Background()

	b := newBook(uuid.New(), "Dune")
	require.NoError(t, repo.Create(ctx, b))
	_, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)

	// Row biến mất nhưng cache vẫn còn entry
	require.NoError(t, inner.Delete(ctx, b.ID))
	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)
	assert.False(t, srv.Exists(book.CacheKey(b.ID)))

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
