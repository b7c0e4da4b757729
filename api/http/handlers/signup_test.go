package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/signup/pkg/controller"
	"github.com/artem13815/signup/pkg/validation"
)

type controllerStub struct {
	resp  controller.Response
	calls []controller.Request
}

func (c *controllerStub) Handle(_ context.Context, req controller.Request) controller.Response {
	c.calls = append(c.calls, req)
	return c.resp
}

func newSignUpApp(c controller.Controller) *fiber.App {
	app := fiber.New()
	app.Post("/signup", NewSignUpHandler(c).SignUp)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return res.StatusCode, out
}

func TestSignUp_PassesFieldMap(t *testing.T) {
	stub := &controllerStub{resp: controller.OK(map[string]any{"id": "valid-id"})}
	app := newSignUpApp(stub)

	status, out := post(t, app, `{"name":"any-name","email":"any-email@mail.com","password":"p","passwordConfirmation":"p"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "valid-id", out["id"])
	require.Len(t, stub.calls, 1)
	assert.Equal(t, map[string]any{
		"name":                 "any-name",
		"email":                "any-email@mail.com",
		"password":             "p",
		"passwordConfirmation": "p",
	}, stub.calls[0].Body)
}

func TestSignUp_RendersValidationError(t *testing.T) {
	stub := &controllerStub{resp: controller.BadRequest(validation.NewMissingField("name"))}
	app := newSignUpApp(stub)

	status, out := post(t, app, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"name": "MissingParamName", "message": "Missing param: name"}, out)
}

func TestSignUp_HidesTrace(t *testing.T) {
	stub := &controllerStub{resp: controller.ServerError(errors.New("secret detail"))}
	app := newSignUpApp(stub)

	status, out := post(t, app, `{}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"name": "ServerError", "message": "Internal server error."}, out)
}

func TestSignUp_EmptyBodyIsEmptyRequest(t *testing.T) {
	stub := &controllerStub{resp: controller.BadRequest(validation.NewMissingField("name"))}
	app := newSignUpApp(stub)

	status, _ := post(t, app, ``)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, stub.calls, 1)
	assert.Empty(t, stub.calls[0].Body)
}

func TestSignUp_MalformedJSON(t *testing.T) {
	stub := &controllerStub{}
	app := newSignUpApp(stub)

	status, out := post(t, app, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid JSON payload", out["message"])
	assert.Empty(t, stub.calls)
}
