package preview

import "errors"

var (
	// ErrFetchFailed is returned when the profile page cannot be retrieved
	ErrFetchFailed = errors.New("profile fetch failed")
	// ErrUnexpectedStatus is returned when the origin responds with a non-success status
	ErrUnexpectedStatus = errors.New("unexpected profile response status")
)
