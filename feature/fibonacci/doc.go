// Package fibonacci implements the Fibonacci calculator feature.
//
// The computation is iterative and linear in n, using saturating uint64
// addition: once the true Fibonacci value exceeds math.MaxUint64 the result
// clamps there instead of wrapping or erroring. The path parameter is the
// only untrusted input in the system; it is parsed and validated at the
// handler boundary and rejected with a client error before any computation
// runs.
//
// # Components
//
//   - Compute: The saturating iterative algorithm.
//   - Service: Wraps the computation into the response shape.
//   - Handler: Exposes the HTTP endpoint and validates the path parameter.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /fibonacci/:n : Returns {"n": n, "result": fib(n)}.
package fibonacci
