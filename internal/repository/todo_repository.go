package repository

import (
	"context"

	"tasklist-backend/internal/domain"

	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data operations. Every
// lookup and mutation is scoped by the owning user's ID as well as the
// record ID; a record ID alone is never trusted.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Todo, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	result := r.db.WithContext(ctx).Create(todo)
	return result.Error
}

func (r *gormTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Todo, error) {
	var todo domain.Todo
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo)
	if result.Error != nil {
		// gorm.ErrRecordNotFound covers both "no such record" and
		// "owned by someone else"; callers must not distinguish them.
		return nil, result.Error
	}
	return &todo, nil
}

func (r *gormTodoRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	var todos []domain.Todo
	result := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

func (r *gormTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	// Save writes all fields; the record was loaded owner-scoped, so the
	// primary key is already known to belong to the caller.
	result := r.db.WithContext(ctx).Save(todo)
	return result.Error
}

func (r *gormTodoRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&domain.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
