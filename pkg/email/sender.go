package email

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// ResendKeyPrefix is the prefix every Resend API key carries.
const ResendKeyPrefix = "re_"

// NewSender validates cfg and builds the Sender for cfg.Provider.
// Errors wrap ErrConfigMissing or ErrConfigMalformed so callers can tell
// "not set up" from "set up wrong".
func NewSender(cfg Config) (Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case ProviderResend:
		return newResendSender(cfg), nil
	case ProviderSendGrid:
		return newSendGridSender(cfg), nil
	case ProviderPostmark:
		return newPostmarkSender(cfg), nil
	case ProviderSMTP:
		s, err := newSMTPSender(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ProviderFile:
		return NewDevSender(cfg.DevDir), nil
	}
	return nil, fmt.Errorf("%w: unknown provider %q", ErrConfigMalformed, cfg.Provider)
}

// Validate checks that cfg is usable for its provider without contacting it.
func (c Config) Validate() error {
	if _, err := mail.ParseAddress(c.sender()); err != nil {
		return errors.Join(ErrConfigMalformed, fmt.Errorf("sender address %q: %w", c.sender(), err))
	}

	switch c.Provider {
	case ProviderResend:
		if c.APIKey == "" {
			return fmt.Errorf("%w: PROVIDER_API_KEY is required for resend", ErrConfigMissing)
		}
		if !strings.HasPrefix(c.APIKey, ResendKeyPrefix) {
			return fmt.Errorf("%w: resend API key must start with %q", ErrConfigMalformed, ResendKeyPrefix)
		}
	case ProviderSendGrid:
		if c.APIKey == "" {
			return fmt.Errorf("%w: PROVIDER_API_KEY is required for sendgrid", ErrConfigMissing)
		}
		if !strings.HasPrefix(c.APIKey, SendGridKeyPrefix) {
			return fmt.Errorf("%w: sendgrid API key must start with %q", ErrConfigMalformed, SendGridKeyPrefix)
		}
	case ProviderPostmark:
		if c.APIKey == "" {
			return fmt.Errorf("%w: PROVIDER_API_KEY is required for postmark", ErrConfigMissing)
		}
		if _, err := uuid.Parse(c.APIKey); err != nil {
			return fmt.Errorf("%w: postmark server token must be a UUID", ErrConfigMalformed)
		}
	case ProviderSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("%w: SMTP_HOST is required for smtp", ErrConfigMissing)
		}
		if c.APIKey == "" {
			return fmt.Errorf("%w: PROVIDER_API_KEY is required for smtp", ErrConfigMissing)
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("%w: SMTP_PORT %d is out of range", ErrConfigMalformed, c.SMTPPort)
		}
	case ProviderFile:
		if c.DevDir == "" {
			return fmt.Errorf("%w: EMAIL_DEV_DIR is required for file", ErrConfigMissing)
		}
	case "":
		return fmt.Errorf("%w: EMAIL_PROVIDER is empty", ErrConfigMissing)
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrConfigMalformed, c.Provider)
	}
	return nil
}
