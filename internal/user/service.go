package user

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, user *User) (*User, error) {
	return s.repo.Create(ctx, user)
}

func (s *Service) SetActive(ctx context.Context, id int, active bool) (*User, error) {
	return s.repo.SetActive(ctx, id, active)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ActiveNames returns the display names of every active stored user.
func (s *Service) ActiveNames(ctx context.Context) ([]string, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ActiveNamesByID(users)
}

// ActiveNamesFor restricts ActiveNames to the given ids. Unknown ids are
// ignored.
func (s *Service) ActiveNamesFor(ctx context.Context, ids []int) ([]string, error) {
	users, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return ActiveNamesByID(users)
}
