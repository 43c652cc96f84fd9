package greeting

import "go.uber.org/zap"

// Message is the fixed greeting returned by the hello endpoint.
const Message = "Hello Dennis!!!"

// Response is the greeting response body.
type Response struct {
	Message string `json:"message"`
}

// Service handles greeting operations.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new greeting service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Greet returns the fixed greeting response.
func (s *Service) Greet() Response {
	return Response{Message: Message}
}
