package email

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// Sender delivers a single message through an email provider.
// Implementations make exactly one provider call per Send and do not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message is one outbound email. From is optional; senders fill in their
// configured identity when it is empty.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

// Receipt is what a provider returns for an accepted message.
type Receipt struct {
	MessageID string `json:"message_id,omitempty"`
}

// Validate checks the fields every provider needs. It does not try to decide
// whether the recipient exists; that is the provider's job.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return errors.Join(ErrInvalidParams, errors.New("To is required"))
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return errors.Join(ErrInvalidParams, errors.New("To must be a valid email address"))
	}
	if m.From != "" {
		if _, err := mail.ParseAddress(m.From); err != nil {
			return errors.Join(ErrInvalidParams, errors.New("From must be a valid email address"))
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.Join(ErrInvalidParams, errors.New("Subject is required"))
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return errors.Join(ErrInvalidParams, errors.New("HTML or Text body is required"))
	}
	return nil
}

func (m Message) from(fallback string) string {
	if m.From != "" {
		return m.From
	}
	return fallback
}
