package mail

import "errors"

var (
	// ErrMissingAPIKey is returned when no Resend API key is provided
	ErrMissingAPIKey = errors.New("missing resend api key")
	// ErrMissingAddress is returned when the from or to address is empty
	ErrMissingAddress = errors.New("missing sender or destination address")
	// ErrSendFailed is returned when the send request cannot be completed
	ErrSendFailed = errors.New("email send failed")
	// ErrUnexpectedStatus is returned when Resend responds with a non-200 status
	ErrUnexpectedStatus = errors.New("unexpected resend response status")
)
