package repository

import (
	"context"
	"errors"
	"testing"

	"tasklist-backend/internal/domain"

	"gorm.io/gorm"
)

func TestGormUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	alice := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, alice); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if alice.ID == 0 {
		t.Fatal("expected ID to be assigned on create")
	}

	t.Run("duplicate email rejected by unique index", func(t *testing.T) {
		dup := &domain.User{Name: "Mallory", Email: "alice@example.com", PasswordHash: "y"}
		err := repo.Create(ctx, dup)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}

		// The original record is untouched.
		got, err := repo.FindByID(ctx, alice.ID)
		if err != nil {
			t.Fatalf("FindByID error: %v", err)
		}
		if got.Name != "Alice" || got.PasswordHash != "x" {
			t.Fatalf("original record modified: %+v", got)
		}
	})

	t.Run("find by email", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("FindByEmail error: %v", err)
		}
		if got.ID != alice.ID {
			t.Fatalf("unexpected user: %+v", got)
		}

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("find by id missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})
}
