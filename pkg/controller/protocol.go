package controller

import "context"

// Request is the transport-independent view of an inbound call.
type Request struct {
	Body map[string]any
}

// Response is the {statusCode, body} envelope handed back to the transport layer.
type Response struct {
	StatusCode int
	Body       any
}

// Controller handles one request. Failures are shaped into the Response, never returned.
type Controller interface {
	Handle(ctx context.Context, req Request) Response
}

// Validation checks a raw request body. A *validation.Error reports a client mistake;
// any other error means the check could not run.
type Validation interface {
	Validate(ctx context.Context, body map[string]any) error
}
