package decorators

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/artem13815/signup/pkg/controller"
)

// ResponseCounter counts envelopes by route and status code.
type ResponseCounter struct {
	vec *prometheus.CounterVec
}

func NewResponseCounter(reg prometheus.Registerer) (*ResponseCounter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup",
		Name:      "controller_responses_total",
		Help:      "Controller responses by route and status code.",
	}, []string{"route", "status"})
	if err := reg.Register(vec); err != nil {
		return nil, err
	}
	return &ResponseCounter{vec: vec}, nil
}

// MetricsController counts each envelope the wrapped controller returns.
type MetricsController struct {
	next    controller.Controller
	route   string
	counter *ResponseCounter
}

func NewMetricsController(next controller.Controller, route string, counter *ResponseCounter) *MetricsController {
	return &MetricsController{next: next, route: route, counter: counter}
}

func (d *MetricsController) Handle(ctx context.Context, req controller.Request) controller.Response {
	resp := d.next.Handle(ctx, req)
	d.counter.vec.WithLabelValues(d.route, strconv.Itoa(resp.StatusCode)).Inc()
	return resp
}
