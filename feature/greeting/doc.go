// Package greeting implements the static greeting feature.
//
// It exposes a single endpoint returning a fixed message. The handler has no
// inputs beyond the request itself and no error conditions.
//
// # Components
//
//   - Service: Produces the greeting response.
//   - Handler: Exposes the HTTP endpoint.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /hello : Returns the fixed greeting.
package greeting
