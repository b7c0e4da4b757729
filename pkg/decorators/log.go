package decorators

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/signup/pkg/controller"
)

// LogErrorRepository stores diagnostic traces of failed requests.
type LogErrorRepository interface {
	LogError(ctx context.Context, trace string) error
}

// LogController records the trace of every 500 envelope produced by the wrapped controller.
// The envelope itself is returned untouched.
type LogController struct {
	next   controller.Controller
	sink   LogErrorRepository
	logger logrus.FieldLogger
}

func NewLogController(next controller.Controller, sink LogErrorRepository, logger logrus.FieldLogger) *LogController {
	return &LogController{next: next, sink: sink, logger: logger}
}

func (d *LogController) Handle(ctx context.Context, req controller.Request) controller.Response {
	resp := d.next.Handle(ctx, req)
	if resp.StatusCode != http.StatusInternalServerError {
		return resp
	}
	body, ok := resp.Body.(controller.ServerErrorBody)
	if !ok {
		return resp
	}
	// sink failures must not leak into the response
	if err := d.sink.LogError(ctx, body.Trace); err != nil {
		d.logger.WithError(err).WithField("trace", body.Trace).Error("log error sink failed")
	}
	return resp
}
