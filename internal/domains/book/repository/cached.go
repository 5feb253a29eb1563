package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"book-manager/internal/domains/book"
	"book-manager/pkg/cache"
	"book-manager/pkg/logger"
)

// DefaultCacheTTL cho book detail
const DefaultCacheTTL = 10 * time.Minute

// cachedRepository bọc một book.Repository với cache-aside cho FindByID.
// Lỗi cache chỉ log, không bao giờ làm fail request
type cachedRepository struct {
	next  book.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next book.Repository, c cache.Cache, ttl time.Duration) book.Repository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) Create(ctx context.Context, b *book.Book) error {
	return r.next.Create(ctx, b)
}

// FindByID - Cache-Aside Pattern
func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	key := book.CacheKey(id)

	// STEP 1: CHECK CACHE FIRST
	var cached book.Book
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("[CACHE] get failed: "+key, err)
	}
	if found {
		return &cached, nil
	}

	// STEP 2: CACHE MISS - QUERY STORE
	b, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// STEP 3: SET CACHE FOR FUTURE REQUESTS
	// Một Delete chạy song song có thể invalidate trước Set này; entry stale sống tối đa r.ttl
	if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
		logger.Warn("[CACHE] set failed: "+key, err)
	}

	return b, nil
}

// ListByOwner không cache: list thay đổi theo mỗi create/delete
func (r *cachedRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]book.Book, error) {
	return r.next.ListByOwner(ctx, ownerID)
}

func (r *cachedRepository) Update(ctx context.Context, b *book.Book) error {
	err := r.next.Update(ctx, b)
	r.invalidate(ctx, b.ID)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, book.CacheKey(id)); err != nil {
		logger.Warn("[CACHE] invalidate failed: "+book.CacheKey(id), err)
	}
}
