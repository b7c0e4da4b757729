package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/signup/pkg/account"
	"github.com/artem13815/signup/pkg/validation"
)

type SignUpController struct {
	validation Validation
	addAccount account.AddAccountUseCase
}

func NewSignUpController(validation Validation, addAccount account.AddAccountUseCase) *SignUpController {
	return &SignUpController{validation: validation, addAccount: addAccount}
}

// NewSignUpValidation builds the signup rule set. Presence checks come first so a
// request missing several fields always reports the first of them.
func NewSignUpValidation(checker validation.EmailChecker) *validation.Composite {
	return validation.New(checker,
		validation.Required("name"),
		validation.Required("email"),
		validation.Required("password"),
		validation.Required("passwordConfirmation"),
		validation.Match("password", "passwordConfirmation"),
		validation.Email("email"),
	)
}

func (c *SignUpController) Handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = ServerError(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := c.validation.Validate(ctx, req.Body); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return BadRequest(verr)
		}
		return ServerError(err)
	}

	acc, err := c.addAccount.Add(ctx, account.AddAccountInput{
		Name:     stringField(req.Body, "name"),
		Email:    stringField(req.Body, "email"),
		Password: stringField(req.Body, "password"),
	})
	if err != nil {
		return ServerError(err)
	}
	return OK(acc)
}

func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
