package service

import (
	"context"
	"sort"
	"time"

	"tasklist-backend/internal/domain"
	"tasklist-backend/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests. They mirror the contracts
// of the gorm repositories: the user fake enforces email uniqueness, the
// todo fake scopes everything by owner and lists newest-created first.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := u
	return &found, nil
}

type fakeTodoRepo struct {
	nextID uint
	now    time.Time
	todos  map[uint]domain.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{now: time.Now(), todos: make(map[uint]domain.Todo)}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *domain.Todo) error {
	r.nextID++
	todo.ID = r.nextID
	// Strictly increasing creation times so list ordering is deterministic.
	r.now = r.now.Add(time.Second)
	todo.CreatedAt = r.now
	todo.UpdatedAt = r.now
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	found := t
	return &found, nil
}

func (r *fakeTodoRepo) FindAllByOwner(ctx context.Context, ownerID uint) ([]domain.Todo, error) {
	var todos []domain.Todo
	for _, t := range r.todos {
		if t.UserID == ownerID {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *domain.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	todo.UpdatedAt = time.Now()
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	t, ok := r.todos[id]
	if !ok || t.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(r.todos, id)
	return nil
}
