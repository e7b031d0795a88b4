package repository

import (
	"context"
	"time"

	"github.com/1Deeeeyl/multiple-activities/internal/domain"

	"gorm.io/gorm"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByProfile returns the owner's todos, newest first.
func (r *TodoRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}

func (r *TodoRepository) GetByID(ctx context.Context, id, profileID string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update patches task and priority. The filter includes the owner so a
// stolen id alone can never touch a foreign row.
func (r *TodoRepository) Update(ctx context.Context, id, profileID, task string, priority domain.TodoPriority, now time.Time) (*domain.Todo, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"task":       task,
			"priority":   priority,
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id, profileID)
}

// Toggle flips is_complete in a single write and returns the updated row.
func (r *TodoRepository) Toggle(ctx context.Context, id, profileID string, now time.Time) (*domain.Todo, error) {
	todo, err := r.GetByID(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	todo.IsComplete = !todo.IsComplete
	todo.UpdatedAt = now

	err = r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"is_complete": todo.IsComplete,
			"updated_at":  now,
		}).Error
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&domain.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByProfile removes every todo the profile owns. Used by account
// deletion; zero rows is fine here.
func (r *TodoRepository) DeleteByProfile(ctx context.Context, profileID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&domain.Todo{}).Error
}
