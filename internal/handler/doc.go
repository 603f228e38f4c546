// Package handler provides HTTP request handlers for the Mergington
// Activities API.
//
// # Handler Pattern
//
// Handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses via
//     MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: Raw JSON response
//   - WriteMessage: Confirmation message payload
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewActivityHandler(activityService)
//	mux.HandleFunc("GET /activities", handler.List)
//	mux.HandleFunc("POST /activities/{name}/signup", handler.Signup)
package handler
