package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	from   string
}

func newPostmarkSender(cfg Config) *postmarkSender {
	client := postmark.NewClient(cfg.APIKey, cfg.AccountToken)
	if cfg.APIBaseURL != "" {
		client.BaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	}
	return &postmarkSender{client: client, from: cfg.sender()}
}

// Send implements Sender using Postmark's transactional API.
// Open and HTML link tracking are enabled; plain text links are left untouched.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.from(s.from),
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, fmt.Errorf("postmark: %w", err))
	}
	if resp.ErrorCode > 0 {
		return Receipt{}, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return Receipt{MessageID: resp.MessageID}, nil
}
