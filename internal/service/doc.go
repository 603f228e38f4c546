// Package service implements the business logic layer for the Mergington
// Activities API.
//
// The service package contains the registry operations, validation rules,
// and orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// Services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with presence validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the concrete store implementation
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrActivityNotFound = errors.New("activity not found")
//	    ErrAlreadySignedUp  = errors.New("already signed up for this activity")
//	)
//
// Dynamic context (which email collided) is attached by wrapping, so
// errors.Is still matches the sentinel:
//
//	fmt.Errorf("%s is %w", email, ErrAlreadySignedUp)
package service
