package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer *gomail.Dialer
	from   *mail.Address
}

func newSMTPSender(cfg Config) (*smtpSender, error) {
	from, err := mail.ParseAddress(cfg.sender())
	if err != nil {
		return nil, errors.Join(ErrConfigMalformed, err)
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.APIKey),
		from:   from,
	}, nil
}

// Send implements Sender over SMTP. The message id is generated locally and
// returned as the receipt, since SMTP has no provider-side id.
// gomail has no context support, so cancellation abandons the dial rather
// than interrupting it.
func (s *smtpSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	from := s.from
	if msg.From != "" {
		// already validated
		from, _ = mail.ParseAddress(msg.From)
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.dialer.Host)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from.Address, from.Name)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.dialer.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return Receipt{}, errors.Join(ErrFailedToSendEmail, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return Receipt{}, errors.Join(ErrFailedToSendEmail, fmt.Errorf("smtp %s:%d: %w", s.dialer.Host, s.dialer.Port, err))
		}
	}
	return Receipt{MessageID: id}, nil
}
