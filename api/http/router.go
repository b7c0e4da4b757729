package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/signup/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, signup *handlers.SignUpHandler, health *handlers.HealthHandler, metrics fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/signup", signup.SignUp)

	app.Get("/metrics", metrics)
	app.Get("/swagger/*", swagger.HandlerDefault)
}
