package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrAlreadySignedUp      = errors.New("already signed up for this activity")
	ErrNotRegistered        = errors.New("not registered for this activity")
	ErrEmailRequired        = errors.New("email is required")
	ErrActivityNameRequired = errors.New("activity name is required")
)
