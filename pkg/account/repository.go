package account

import (
	"context"
	"errors"
)

var ErrEmailInUse = errors.New("email already in use")

// Repository abstracts persistence concerns from the domain layer.
// Implementations assign the account ID.
type Repository interface {
	Add(ctx context.Context, input AddAccountInput) (Account, error)
}

// Hasher turns a plaintext secret into its stored form.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
}
