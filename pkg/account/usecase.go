package account

import "context"

// AddAccountUseCase describes account creation.
type AddAccountUseCase interface {
	Add(ctx context.Context, input AddAccountInput) (Account, error)
}

type service struct {
	hasher Hasher
	repo   Repository
}

// NewService returns default implementation of AddAccountUseCase.
func NewService(hasher Hasher, repo Repository) AddAccountUseCase {
	return &service{hasher: hasher, repo: repo}
}

func (s *service) Add(ctx context.Context, input AddAccountInput) (Account, error) {
	hashed, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return Account{}, err
	}
	return s.repo.Add(ctx, AddAccountInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	})
}
