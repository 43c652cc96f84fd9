package greeting

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for greetings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the greeting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/hello", h.HandleHello)
}

// HandleHello returns the fixed greeting.
// @Summary Get Greeting
// @Description Returns the static greeting message.
// @Tags greeting
// @Accept json
// @Produce json
// @Success 200 {object} greeting.Response "Greeting"
// @Router /hello [get]
func (h *Handler) HandleHello(c *fiber.Ctx) error {
	return c.JSON(h.service.Greet())
}
