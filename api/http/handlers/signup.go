package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/signup/api/http/presenter"
	"github.com/artem13815/signup/pkg/controller"
)

type SignUpHandler struct {
	controller controller.Controller
}

func NewSignUpHandler(c controller.Controller) *SignUpHandler {
	return &SignUpHandler{controller: c}
}

// signUpRequest documents the payload; the controller receives the raw field map.
type signUpRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// SignUp creates an account.
// @Summary Sign up
// @Tags    accounts
// @Accept  json
// @Produce json
// @Param   input body signUpRequest true "signup payload"
// @Success 200 {object} account.Account
// @Failure 400 {object} map[string]string
// @Failure 500 {object} controller.ServerErrorBody
// @Router  /signup [post]
func (h *SignUpHandler) SignUp(c *fiber.Ctx) error {
	body := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	resp := h.controller.Handle(c.UserContext(), controller.Request{Body: body})
	return presenter.Envelope(c, resp)
}
