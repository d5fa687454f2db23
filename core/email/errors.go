package email

import "errors"

// Sentinel errors shared by every Sender implementation. Providers wrap them
// with detail using errors.Join(), so callers can branch with errors.Is()
// while still seeing the underlying cause.
var (
	// ErrFailedToSendEmail covers transport and provider failures: the relay
	// rejected the message, the connection dropped, or the API returned an
	// error code.
	ErrFailedToSendEmail = errors.New("failed to send email")

	// ErrInvalidConfig marks provider configuration rejected at construction.
	ErrInvalidConfig = errors.New("invalid email configuration")

	// ErrInvalidParams marks an envelope rejected by validation before any
	// connection is opened.
	ErrInvalidParams = errors.New("invalid email parameters")
)
