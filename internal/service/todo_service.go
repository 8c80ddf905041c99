package service

import (
	"context"
	"fmt"
	"time"

	"taskbill/internal/cache"
	dom "taskbill/internal/domain"
	"taskbill/internal/platform/logger"

	"github.com/google/uuid"
)

// TodoService owns todo identity and timestamp policy. It works against any
// dom.TodoRepository; persistence details stay behind that interface.
type TodoService struct {
	repo dom.TodoRepository
	rd   *reader[dom.Todo]
	now  func() time.Time
}

// NewTodoService creates a TodoService. If c is nil, list caching is disabled.
func NewTodoService(r dom.TodoRepository, c *cache.EntityCache[dom.Todo], log *logger.Logger) *TodoService {
	return &TodoService{
		repo: r,
		rd:   &reader[dom.Todo]{repo: r, cache: c, log: log},
		now:  dom.Now,
	}
}

// WithClock replaces the creation-time clock.
func (s *TodoService) WithClock(now func() time.Time) *TodoService {
	s.now = now
	return s
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	return s.rd.list(ctx)
}

// Get returns ok == false when no todo has that ID.
func (s *TodoService) Get(ctx context.Context, id uuid.UUID) (dom.Todo, bool, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TodoService) Create(ctx context.Context, title, description string) (dom.Todo, error) {
	t, err := dom.NewTodo(title, description, s.now())
	if err != nil {
		return dom.Todo{}, fmt.Errorf("new todo: %w", err)
	}
	out, err := s.repo.Create(ctx, t)
	if err != nil {
		return dom.Todo{}, err
	}
	s.rd.invalidate(ctx)
	return out, nil
}

// Update replaces every mutable field. UpdatedAt is left to the repository.
func (s *TodoService) Update(ctx context.Context, id uuid.UUID, title, description string, completed bool) (dom.Todo, error) {
	existing, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !ok {
		return dom.Todo{}, fmt.Errorf("todo %s: %w", id, dom.ErrNotFound)
	}
	existing.Title = title
	existing.Description = &description
	existing.Completed = completed

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return dom.Todo{}, err
	}
	s.rd.invalidate(ctx)
	return out, nil
}

func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.rd.invalidate(ctx)
	return nil
}
