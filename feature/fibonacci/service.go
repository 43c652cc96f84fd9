package fibonacci

import "go.uber.org/zap"

// Service handles Fibonacci computations.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new fibonacci service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Fibonacci computes the n-th Fibonacci number and returns the full response.
// n is expected to be validated at the handler boundary; the computation
// itself cannot fail.
func (s *Service) Fibonacci(n uint64) Result {
	return Result{N: n, Result: Compute(n)}
}
