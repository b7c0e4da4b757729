package controller

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ServerErrorBody is the generic failure marker of a 500 envelope.
// Trace stays server-side; it is never rendered to clients.
type ServerErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Trace   string `json:"-"`
}

func (e ServerErrorBody) Error() string { return e.Message }

func OK(body any) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func BadRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func ServerError(err error) Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body: ServerErrorBody{
			Name:    "ServerError",
			Message: "Internal server error.",
			Trace:   trace(err),
		},
	}
}

// trace renders err with a stack; errors that already carry one keep it.
func trace(err error) string {
	if err == nil {
		return ""
	}
	type stackTracer interface{ StackTrace() errors.StackTrace }
	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	return fmt.Sprintf("%+v", err)
}
