package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskbill/internal/cache"
	dom "taskbill/internal/domain"
	"taskbill/internal/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodoService(t *testing.T) (*TodoService, *memRepo[dom.Todo]) {
	t.Helper()
	clock := newTickClock()
	repo := newTodoRepo(clock.Now)
	return NewTodoService(repo, nil, logger.NewNop()).WithClock(clock.Now), repo
}

func TestTodoService_Create(t *testing.T) {
	svc, repo := newTodoService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, "Buy milk", "2%")
	require.NoError(t, err)
	b, err := svc.Create(ctx, "Buy milk", "2%")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.False(t, a.Completed)
	require.NotNil(t, a.Description)
	assert.Equal(t, "2%", *a.Description)
	assert.Equal(t, 2, repo.called("Create"))
}

func TestTodoService_CreateThenGet(t *testing.T) {
	svc, _ := newTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "a", "b")
	require.NoError(t, err)

	got, ok, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestTodoService_GetMissing(t *testing.T) {
	svc, _ := newTodoService(t)

	_, ok, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTodoService_UpdateReplacesAllFields(t *testing.T) {
	svc, _ := newTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "A", "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "B", "d", true)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "B", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "d", *updated.Description)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	again, err := svc.Update(ctx, created.ID, "B", "", false)
	require.NoError(t, err)
	assert.Equal(t, "", *again.Description)
	assert.False(t, again.Completed)
	assert.False(t, again.UpdatedAt.Before(updated.UpdatedAt))
	assert.False(t, again.UpdatedAt.Before(again.CreatedAt))
}

func TestTodoService_UpdateMissingDoesNotWrite(t *testing.T) {
	svc, repo := newTodoService(t)

	_, err := svc.Update(context.Background(), uuid.New(), "B", "d", true)
	assert.ErrorIs(t, err, dom.ErrNotFound)
	assert.Equal(t, 1, repo.called("FindByID"))
	assert.Zero(t, repo.called("Update"))
}

func TestTodoService_Delete(t *testing.T) {
	svc, _ := newTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "a", "b")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, ok, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), dom.ErrNotFound)
}

func TestTodoService_PropagatesStoreErrors(t *testing.T) {
	svc, repo := newTodoService(t)
	boom := errors.New("store unavailable")
	repo.err = boom
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, "a", "b")
	assert.ErrorIs(t, err, boom)
	_, err = svc.Update(ctx, uuid.New(), "a", "b", false)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, dom.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), boom)
}

func newCachedTodoService(t *testing.T) (*TodoService, *memRepo[dom.Todo], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	clock := newTickClock()
	repo := newTodoRepo(clock.Now)
	c := cache.NewEntityCache[dom.Todo](rdb, "todo", time.Minute)
	return NewTodoService(repo, c, logger.NewNop()).WithClock(clock.Now), repo, mr
}

func TestTodoService_CachedReads(t *testing.T) {
	svc, repo, _ := newCachedTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "A", "x")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
	assert.Equal(t, 1, repo.called("FindAll"))

	for i := 0; i < 3; i++ {
		_, ok, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 3, repo.called("FindByID"), "lookups by id are never cached")

	_, err = svc.Update(ctx, created.ID, "B", "y", true)
	require.NoError(t, err)

	got, ok, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", list[0].Title)
	assert.Equal(t, 2, repo.called("FindAll"))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, ok, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTodoService_DeleteWhileRedisFails(t *testing.T) {
	svc, _, mr := newCachedTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "A", "x")
	require.NoError(t, err)
	_, ok, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	mr.SetError("transient")
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, ok, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "list served while redis is down must come from the store")

	mr.SetError("")
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	cached, err := mr.Get("todo:list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, cached)
}

func TestTodoService_ListLoadedBeforeDeleteIsNotCached(t *testing.T) {
	svc, repo, mr := newCachedTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "A", "x")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.pauseFindAll(entered, release)

	done := make(chan []dom.Todo)
	go func() {
		list, _ := svc.List(ctx)
		done <- list
	}()
	<-entered
	require.NoError(t, svc.Delete(ctx, created.ID))
	close(release)
	<-done

	assert.False(t, mr.Exists("todo:list"), "a list read before the delete must not be written back")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
