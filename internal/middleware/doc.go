// Package middleware provides HTTP middleware for the Mergington
// Activities API.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Unique request identifier generation and propagation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a Problem Details 500 response
//   - CORS: Cross-origin request handling with an origin allowlist
//   - Compress: gzip response compression
//
// # Composition
//
// Middleware is applied with Chain, outermost first:
//
//	handler := middleware.Chain(
//	    mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.Compress,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
