package todo

import (
	"context"
	"testing"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Todo, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTodoRepository) Update(ctx context.Context, id, profileID, task string, priority domain.TodoPriority, now time.Time) (*domain.Todo, error) {
	args := m.Called(ctx, id, profileID, task, priority, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) Toggle(ctx context.Context, id, profileID string, now time.Time) (*domain.Todo, error) {
	args := m.Called(ctx, id, profileID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id, profileID string) error {
	args := m.Called(ctx, id, profileID)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(todo *domain.Todo) bool {
		return todo.Task == "Buy milk" &&
			todo.Priority == domain.PriorityLow &&
			!todo.IsComplete &&
			todo.ProfileID == "user-1" &&
			todo.ID != ""
	})).Return(nil)

	created, err := svc.Create(context.Background(), "user-1", CreateTodoRequest{Text: "  Buy milk ", Priority: "LOW"})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Task)
	assert.False(t, created.IsComplete)
	repo.AssertExpectations(t)
}

func TestService_Create_EmptyTaskFailsBeforeAnyCall(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), "user-1", CreateTodoRequest{Text: "   "})

	assert.ErrorIs(t, err, ErrEmptyTask)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_UnknownPriority(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), "user-1", CreateTodoRequest{Text: "x", Priority: "URGENT"})

	assert.ErrorIs(t, err, ErrInvalidPriority)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_DefaultsToLowPriority(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(todo *domain.Todo) bool {
		return todo.Priority == domain.PriorityLow
	})).Return(nil)

	_, err := svc.Create(context.Background(), "user-1", CreateTodoRequest{Text: "x"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Toggle_ReturnsUpdatedRow(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.On("Toggle", mock.Anything, "todo-1", "user-1", mock.Anything).
		Return(&domain.Todo{
			ID:         "todo-1",
			Task:       "Buy milk",
			IsComplete: true,
			Priority:   domain.PriorityLow,
			ProfileID:  "user-1",
			CreatedAt:  created,
			UpdatedAt:  created.Add(time.Hour),
		}, nil)

	got, err := svc.Toggle(context.Background(), "user-1", "todo-1")

	require.NoError(t, err)
	assert.True(t, got.IsComplete)
	assert.Equal(t, "Buy milk", got.Task)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestService_Toggle_NotFound(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	repo.On("Toggle", mock.Anything, "missing", "user-1", mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), "user-1", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_EmptyTask(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), "user-1", "todo-1", UpdateTodoRequest{Text: ""})

	assert.ErrorIs(t, err, ErrEmptyTask)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Delete_AbsentIDIsNotFound(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewService(repo, nil)

	repo.On("Delete", mock.Anything, "missing", "user-1").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "user-1", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
