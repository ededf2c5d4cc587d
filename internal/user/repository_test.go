package user

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository([]*User{
		NewUser(3, "Bob", "Lee", true),
		nil,
		NewUser(1, "Amy", "Choi", true),
	})

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 || users[0].ID() != 1 || users[1].ID() != 3 {
		t.Fatalf("expected users 1 and 3 in id order, got %d users", len(users))
	}

	if _, err := repo.Create(ctx, NewUser(1, "Dup", "User", true)); !errors.Is(err, ErrIDExists) {
		t.Fatalf("expected ErrIDExists, got %v", err)
	}
	if _, err := repo.Create(ctx, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := repo.Create(ctx, NewUser(2, "Cy", "Park", false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if DisplayName(got) != "Cy Park" || got.Active() {
		t.Fatalf("unexpected user %s active=%t", DisplayName(got), got.Active())
	}

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestInMemoryRepository_SetActiveIsShared(t *testing.T) {
	ctx := context.Background()
	amy := NewUser(1, "Amy", "Choi", true)
	repo := NewInMemoryRepository([]*User{amy})

	updated, err := repo.SetActive(ctx, 1, false)
	if err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	if updated.Active() || amy.Active() {
		t.Fatalf("expected change visible to all holders")
	}

	if _, err := repo.SetActive(ctx, 99, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryRepository_ListByIDs(t *testing.T) {
	repo := NewInMemoryRepository([]*User{
		NewUser(1, "Amy", "Choi", true),
		NewUser(2, "Cy", "Park", true),
		NewUser(3, "Bob", "Lee", true),
	})

	users, err := repo.ListByIDs(context.Background(), []int{3, 42, 1, 3})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(users) != 2 || users[0].ID() != 1 || users[1].ID() != 3 {
		t.Fatalf("expected users 1 and 3, got %d users", len(users))
	}
}

func TestInMemoryRepository_ConcurrentSetActive(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository([]*User{NewUser(1, "Amy", "Choi", true)})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(active bool) {
			defer wg.Done()
			if _, err := repo.SetActive(ctx, 1, active); err != nil {
				t.Errorf("set active failed: %v", err)
			}
		}(i%2 == 0)
		go func(id int) {
			defer wg.Done()
			if _, err := repo.Create(ctx, NewUser(id, "U", "V", true)); err != nil {
				t.Errorf("create failed: %v", err)
			}
		}(i + 100)
		go func() {
			defer wg.Done()
			if _, err := repo.List(ctx); err != nil {
				t.Errorf("list failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if _, err := repo.SetActive(ctx, 1, false); err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	u, _ := repo.GetByID(ctx, 1)
	if u.Active() {
		t.Fatalf("expected final SetActive to win")
	}
}
