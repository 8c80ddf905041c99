package service

import (
	"context"
	"sync/atomic"

	"taskbill/internal/cache"
	dom "taskbill/internal/domain"
	"taskbill/internal/platform/logger"

	"golang.org/x/sync/singleflight"
)

// reader puts an optional read-through list cache in front of a repository.
// With a nil cache every call goes straight to the repository.
//
// gen is bumped on every write. A list loaded from the store is only written
// back when no write happened meanwhile. stale is set when an invalidation
// failed; lists then bypass the cache until the key is dropped.
type reader[T any] struct {
	repo  dom.Repository[T]
	cache *cache.EntityCache[T]
	log   *logger.Logger
	sf    singleflight.Group
	gen   atomic.Uint64
	stale atomic.Bool
}

func (r *reader[T]) list(ctx context.Context) ([]T, error) {
	if r.cache == nil {
		return r.repo.FindAll(ctx)
	}
	if r.stale.CompareAndSwap(true, false) {
		if err := r.cache.Invalidate(ctx); err != nil {
			r.stale.Store(true)
			r.log.Warn("list cache still stale, reading from store", "error", err)
			return r.repo.FindAll(ctx)
		}
	}
	v, err, _ := r.sf.Do("list", func() (interface{}, error) {
		if list, ok, err := r.cache.GetList(ctx); err == nil && ok {
			return list, nil
		}
		gen := r.gen.Load()
		list, err := r.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if r.gen.Load() == gen {
			_ = r.cache.SetList(ctx, list)
			if r.gen.Load() != gen {
				r.drop(ctx)
			}
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// invalidate runs after every successful write.
func (r *reader[T]) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.gen.Add(1)
	r.drop(ctx)
}

func (r *reader[T]) drop(ctx context.Context) {
	if err := r.cache.Invalidate(ctx); err != nil {
		r.stale.Store(true)
		r.log.Warn("list cache invalidation failed", "error", err)
	}
}
