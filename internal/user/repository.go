package user

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrIDExists     = errors.New("user id already exists")
	ErrInvalidInput = errors.New("invalid input")
)

type Repository interface {
	List(ctx context.Context) ([]*User, error)
	ListByIDs(ctx context.Context, ids []int) ([]*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	SetActive(ctx context.Context, id int, active bool) (*User, error)
	Delete(ctx context.Context, id int) error
}

// InMemoryRepository keeps users in a map. Stored pointers are handed out
// as-is, so a SetActive through the repository is visible to every holder.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[int]*User
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository seeds the store. Nil entries are skipped and a later
// entry with a repeated id replaces the earlier one.
func NewInMemoryRepository(seed []*User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users: make(map[int]*User, len(seed)),
	}
	for _, user := range seed {
		if user == nil {
			continue
		}
		repo.users[user.ID()] = user
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sortByID(users)
	return users, nil
}

func (r *InMemoryRepository) ListByIDs(ctx context.Context, ids []int) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]bool, len(ids))
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	sortByID(users)
	return users, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID()]; ok {
		return nil, ErrIDExists
	}
	r.users[user.ID()] = user
	return user, nil
}

func (r *InMemoryRepository) SetActive(ctx context.Context, id int, active bool) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.SetActive(active)
	return user, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func sortByID(users []*User) {
	slices.SortFunc(users, func(a, b *User) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}
