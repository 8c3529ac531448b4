package config

import "errors"

var (
	// ErrMissingEnv is returned when a required environment variable is unset
	ErrMissingEnv = errors.New("missing required environment variable")
	// ErrInvalidEmail is returned when an address-valued variable is not a valid email shape
	ErrInvalidEmail = errors.New("invalid email address in environment variable")
	// ErrInvalidNumber is returned when a numeric variable cannot be parsed
	ErrInvalidNumber = errors.New("environment variable must be a number")
	// ErrInvalidDuration is returned when a duration variable cannot be parsed
	ErrInvalidDuration = errors.New("environment variable must be a duration")
)
