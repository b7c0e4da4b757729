package emailcheck

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// Checker implements validation.EmailChecker using go-playground/validator's email rule.
type Checker struct {
	validate *validator.Validate
}

func New() *Checker {
	return &Checker{validate: validator.New()}
}

func (c *Checker) IsValid(ctx context.Context, email string) (bool, error) {
	err := c.validate.VarCtx(ctx, email, "required,email")
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, err
}
