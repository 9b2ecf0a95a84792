package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
	from   string
}

func newResendSender(cfg Config) *resendSender {
	client := resend.NewClient(cfg.APIKey)
	if cfg.APIBaseURL != "" {
		if u, err := url.Parse(strings.TrimRight(cfg.APIBaseURL, "/") + "/"); err == nil {
			client.BaseURL = u
		}
	}
	return &resendSender{client: client, from: cfg.sender()}
}

// Send implements Sender using the Resend emails API.
func (s *resendSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	req := &resend.SendEmailRequest{
		From:    msg.from(s.from),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, fmt.Errorf("resend: %w", err))
	}
	return Receipt{MessageID: resp.Id}, nil
}
