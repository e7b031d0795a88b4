package todo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TodoRepositoryInterface interface {
	ListByProfile(ctx context.Context, profileID string) ([]domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) error
	Update(ctx context.Context, id, profileID, task string, priority domain.TodoPriority, now time.Time) (*domain.Todo, error)
	Toggle(ctx context.Context, id, profileID string, now time.Time) (*domain.Todo, error)
	Delete(ctx context.Context, id, profileID string) error
}

type Service struct {
	todos  TodoRepositoryInterface
	events realtime.Publisher
}

func NewService(todos TodoRepositoryInterface, events realtime.Publisher) *Service {
	return &Service{todos: todos, events: events}
}

func (s *Service) List(ctx context.Context, profileID string) ([]domain.Todo, error) {
	return s.todos.ListByProfile(ctx, profileID)
}

// Create validates before any write: blank task and unknown priority fail
// fast without touching the store. An empty priority defaults to LOW.
func (s *Service) Create(ctx context.Context, profileID string, req CreateTodoRequest) (*domain.Todo, error) {
	task := strings.TrimSpace(req.Text)
	if task == "" {
		return nil, ErrEmptyTask
	}

	priority := domain.TodoPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityLow
	}
	if !domain.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	now := time.Now().UTC()
	t := &domain.Todo{
		ID:         uuid.New().String(),
		Task:       task,
		IsComplete: false,
		Priority:   priority,
		ProfileID:  profileID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.todos.Create(ctx, t); err != nil {
		return nil, err
	}

	s.publish(profileID, realtime.EventInsert, t)
	return t, nil
}

func (s *Service) Update(ctx context.Context, profileID, id string, req UpdateTodoRequest) (*domain.Todo, error) {
	task := strings.TrimSpace(req.Text)
	if task == "" {
		return nil, ErrEmptyTask
	}

	priority := domain.TodoPriority(req.Priority)
	if !domain.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	t, err := s.todos.Update(ctx, id, profileID, task, priority, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.publish(profileID, realtime.EventUpdate, t)
	return t, nil
}

// Toggle flips completion in a single write; the returned row is the
// authoritative state, no follow-up fetch of the whole list.
func (s *Service) Toggle(ctx context.Context, profileID, id string) (*domain.Todo, error) {
	t, err := s.todos.Toggle(ctx, id, profileID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.publish(profileID, realtime.EventUpdate, t)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, profileID, id string) error {
	if err := s.todos.Delete(ctx, id, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.publish(profileID, realtime.EventDelete, map[string]string{"id": id})
	return nil
}

func (s *Service) publish(profileID string, typ realtime.EventType, record any) {
	if s.events == nil {
		return
	}
	s.events.Publish(profileID, realtime.Event{Table: "todos", Type: typ, Record: record})
}
