package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/signup/pkg/controller"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Envelope writes a controller response as-is: status code and JSON body.
func Envelope(c *fiber.Ctx, resp controller.Response) error {
	return JSON(c, resp.StatusCode, resp.Body)
}
