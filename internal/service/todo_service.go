package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tasklist-backend/internal/domain"
	"tasklist-backend/internal/repository"

	"gorm.io/gorm"
)

// ErrTodoNotFound covers both "no such todo" and "owned by another user".
// The two cases are deliberately indistinguishable so record existence
// never leaks across accounts.
var ErrTodoNotFound = errors.New("todo not found")

// CreateTodoRequest holds the data needed to create a new todo.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTodoRequest holds a partial update. Pointer fields distinguish
// "omitted" from "set to the zero value"; an explicitly empty DueDate
// clears the stored due date.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// TodoResponse is the standard representation of a todo returned by the service.
type TodoResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	UserID      uint    `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TodoService defines the operations for managing todos. Every operation
// takes the resolved owner ID from the auth gate and scopes the underlying
// query by it.
type TodoService interface {
	CreateTodo(ctx context.Context, ownerID uint, req CreateTodoRequest) (*TodoResponse, error)
	GetTodoByID(ctx context.Context, ownerID, id uint) (*TodoResponse, error)
	GetAllTodos(ctx context.Context, ownerID uint) ([]TodoResponse, error)
	UpdateTodo(ctx context.Context, ownerID, id uint, req UpdateTodoRequest) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, ownerID, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new instance of todoService.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) CreateTodo(ctx context.Context, ownerID uint, req CreateTodoRequest) (*TodoResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "Title is required"}
	}
	if len(title) > 100 {
		return nil, &ValidationError{Field: "title", Message: "Title cannot be more than 100 characters"}
	}

	description := strings.TrimSpace(req.Description)
	if len(description) > 500 {
		return nil, &ValidationError{Field: "description", Message: "Description cannot be more than 500 characters"}
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.IsValid() {
			return nil, &ValidationError{Field: "priority", Message: "Priority must be one of low, medium, high"}
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	newTodo := &domain.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		UserID:      ownerID,
	}

	if err := s.repo.Create(ctx, newTodo); err != nil {
		log.Printf("Error creating todo in repository: %v", err)
		return nil, errors.New("failed to create todo item")
	}

	return toTodoResponse(newTodo), nil
}

func (s *todoService) GetTodoByID(ctx context.Context, ownerID, id uint) (*TodoResponse, error) {
	todo, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d from repository: %v", id, err)
		return nil, errors.New("failed to retrieve todo item")
	}

	return toTodoResponse(todo), nil
}

func (s *todoService) GetAllTodos(ctx context.Context, ownerID uint) ([]TodoResponse, error) {
	todos, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("Error fetching todos for user %d: %v", ownerID, err)
		return nil, errors.New("failed to retrieve todo items")
	}

	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, *toTodoResponse(&todos[i]))
	}
	return responses, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, ownerID, id uint, req UpdateTodoRequest) (*TodoResponse, error) {
	existing, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d for update: %v", id, err)
		return nil, errors.New("failed to retrieve todo item for update")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &ValidationError{Field: "title", Message: "Title is required"}
		}
		if len(title) > 100 {
			return nil, &ValidationError{Field: "title", Message: "Title cannot be more than 100 characters"}
		}
		existing.Title = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) > 500 {
			return nil, &ValidationError{Field: "description", Message: "Description cannot be more than 500 characters"}
		}
		existing.Description = description
	}
	if req.Completed != nil {
		existing.Completed = *req.Completed
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.IsValid() {
			return nil, &ValidationError{Field: "priority", Message: "Priority must be one of low, medium, high"}
		}
		existing.Priority = priority
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		existing.DueDate = dueDate
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.Printf("Error updating todo %d in repository: %v", id, err)
		return nil, errors.New("failed to update todo item")
	}

	return toTodoResponse(existing), nil
}

func (s *todoService) DeleteTodo(ctx context.Context, ownerID, id uint) error {
	err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		log.Printf("Error deleting todo %d from repository: %v", id, err)
		return errors.New("failed to delete todo item")
	}
	return nil
}

// parseDueDate interprets an optional due date string. nil means "not
// provided"; an empty string means "no due date" (clears the field on
// update). Accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, nil
	}
	return nil, &ValidationError{Field: "dueDate", Message: "Due date must be an RFC 3339 timestamp or YYYY-MM-DD"}
}

func toTodoResponse(todo *domain.Todo) *TodoResponse {
	resp := &TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Priority:    string(todo.Priority),
		UserID:      todo.UserID,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
	}
	if todo.DueDate != nil {
		due := todo.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}
