package notifier

import "errors"

var (
	// ErrNotConfigured is recorded when the notifier runs without a provider.
	ErrNotConfigured = errors.New("notifier: email provider not configured")
	// ErrUnexpected wraps a panic recovered at the send boundary.
	ErrUnexpected = errors.New("notifier: unexpected failure")
	// ErrInvalidBaseURL means APPLICATION_BASE_URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("notifier: invalid application base URL")
)
