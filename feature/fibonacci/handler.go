package fibonacci

import (
	"strconv"

	"fib-service/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for Fibonacci numbers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the fibonacci routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fibonacci")
	group.Get("/:n", h.HandleFibonacci)
}

// HandleFibonacci computes the Fibonacci number for the path parameter.
// @Summary Compute Fibonacci Number
// @Description Computes the n-th Fibonacci number with saturating uint64 arithmetic.
// @Tags fibonacci
// @Accept json
// @Produce json
// @Param n path integer true "Fibonacci index (non-negative)"
// @Success 200 {object} fibonacci.Result "Fibonacci Result"
// @Failure 400 {object} map[string]string "Invalid index"
// @Router /fibonacci/{n} [get]
func (h *Handler) HandleFibonacci(c *fiber.Ctx) error {
	param := c.Params("n")
	l := logger.WithRayID(h.service.logger, c)

	// Reject non-numeric, negative, or out-of-range indices before computing.
	n, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		l.Warn("Invalid fibonacci index", zap.String("param", param), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "n must be a non-negative integer",
		})
	}

	return c.JSON(h.service.Fibonacci(n))
}
