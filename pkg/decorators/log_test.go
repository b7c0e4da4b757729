package decorators

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/signup/pkg/controller"
)

type controllerStub struct {
	resp  controller.Response
	calls []controller.Request
}

func (c *controllerStub) Handle(_ context.Context, req controller.Request) controller.Response {
	c.calls = append(c.calls, req)
	return c.resp
}

type sinkStub struct {
	err    error
	traces []string
}

func (s *sinkStub) LogError(_ context.Context, trace string) error {
	s.traces = append(s.traces, trace)
	return s.err
}

func fakeRequest() controller.Request {
	return controller.Request{Body: map[string]any{
		"name":                 "any-name",
		"email":                "any-email@mail.com",
		"password":             "any-password",
		"passwordConfirmation": "any-password",
	}}
}

func newLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

func TestLogController_CallsWrappedController(t *testing.T) {
	inner := &controllerStub{resp: controller.OK(map[string]any{"name": "any-name"})}
	logger, _ := newLogger()
	sut := NewLogController(inner, &sinkStub{}, logger)

	req := fakeRequest()
	sut.Handle(context.Background(), req)
	require.Len(t, inner.calls, 1)
	assert.Equal(t, req, inner.calls[0])
}

func TestLogController_ReturnsSameResponse(t *testing.T) {
	responses := []controller.Response{
		controller.OK(map[string]any{"name": "any-name"}),
		controller.BadRequest(errors.New("bad")),
		controller.ServerError(errors.New("boom")),
	}
	for _, resp := range responses {
		inner := &controllerStub{resp: resp}
		logger, _ := newLogger()
		sut := NewLogController(inner, &sinkStub{}, logger)

		assert.Equal(t, resp, sut.Handle(context.Background(), fakeRequest()))
	}
}

func TestLogController_LogsTraceOnServerError(t *testing.T) {
	resp := controller.ServerError(errors.New("boom"))
	sink := &sinkStub{}
	logger, _ := newLogger()
	sut := NewLogController(&controllerStub{resp: resp}, sink, logger)

	sut.Handle(context.Background(), fakeRequest())
	require.Len(t, sink.traces, 1)
	assert.Equal(t, resp.Body.(controller.ServerErrorBody).Trace, sink.traces[0])
}

func TestLogController_SkipsSinkBelow500(t *testing.T) {
	for _, resp := range []controller.Response{
		controller.OK("ok"),
		{StatusCode: http.StatusBadRequest, Body: errors.New("bad")},
	} {
		sink := &sinkStub{}
		logger, _ := newLogger()
		sut := NewLogController(&controllerStub{resp: resp}, sink, logger)

		sut.Handle(context.Background(), fakeRequest())
		assert.Empty(t, sink.traces)
	}
}

func TestLogController_SinkFailureIsSwallowed(t *testing.T) {
	resp := controller.ServerError(errors.New("boom"))
	sink := &sinkStub{err: errors.New("sink down")}
	logger, hook := newLogger()
	sut := NewLogController(&controllerStub{resp: resp}, sink, logger)

	got := sut.Handle(context.Background(), fakeRequest())
	assert.Equal(t, resp, got)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "log error sink failed", hook.LastEntry().Message)
}
