package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridKeyPrefix is the prefix every SendGrid API key carries.
const SendGridKeyPrefix = "SG."

const sendGridEndpoint = "/v3/mail/send"

type sendGridSender struct {
	client *sendgrid.Client
	from   string
}

func newSendGridSender(cfg Config) *sendGridSender {
	client := sendgrid.NewSendClient(cfg.APIKey)
	if cfg.APIBaseURL != "" {
		client.BaseURL = strings.TrimRight(cfg.APIBaseURL, "/") + sendGridEndpoint
	}
	return &sendGridSender{client: client, from: cfg.sender()}
}

// Send implements Sender using the SendGrid v3 mail API. The receipt id is
// taken from the X-Message-Id response header.
func (s *sendGridSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	// both addresses were validated above or in Config.Validate
	from, _ := mail.ParseAddress(msg.from(s.from))
	to, _ := mail.ParseAddress(msg.To)

	m := sgmail.NewSingleEmail(
		sgmail.NewEmail(from.Name, from.Address),
		msg.Subject,
		sgmail.NewEmail(to.Name, to.Address),
		msg.Text,
		msg.HTML,
	)
	if msg.Tag != "" {
		m.AddCategories(msg.Tag)
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, fmt.Errorf("sendgrid: %w", err))
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return Receipt{}, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("sendgrid error: %d - %s", resp.StatusCode, strings.TrimSpace(resp.Body)),
		)
	}

	var id string
	if v := resp.Headers["X-Message-Id"]; len(v) > 0 {
		id = v[0]
	}
	return Receipt{MessageID: id}, nil
}
