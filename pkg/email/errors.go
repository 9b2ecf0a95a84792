package email

import "errors"

var (
	// ErrConfigMissing means a provider credential or required setting is absent.
	ErrConfigMissing = errors.New("mailer.errors.config_missing")
	// ErrConfigMalformed means a provider setting is present but unusable.
	ErrConfigMalformed = errors.New("mailer.errors.config_malformed")
	// ErrInvalidParams means a Message failed validation before any provider call.
	ErrInvalidParams = errors.New("mailer.errors.invalid_params")
	// ErrFailedToSendEmail wraps every provider-side failure.
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
)
