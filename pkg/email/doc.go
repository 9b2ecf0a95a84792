// Package email is the provider layer of the notifier: one Sender interface and
// interchangeable implementations chosen by configuration.
//
//   - resend: github.com/resend/resend-go/v2, key prefixed with "re_"
//   - postmark: github.com/mrz1836/postmark, server token is a UUID
//   - smtp: gopkg.in/gomail.v2, the key is the SMTP password
//   - file: DevSender, writes messages to disk for local development
//
// # Usage
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	sender, err := email.NewSender(cfg)
//	switch {
//	case errors.Is(err, email.ErrConfigMissing), errors.Is(err, email.ErrConfigMalformed):
//	    // run without a provider
//	case err != nil:
//	    return err
//	}
//
//	receipt, err := sender.Send(ctx, email.Message{
//	    To:      "user@example.com",
//	    Subject: "Verify Your Email",
//	    HTML:    html,
//	    Text:    text,
//	    Tag:     "verification",
//	})
//
// Every Send validates the message first (ErrInvalidParams) and makes at most
// one provider call. Provider failures are joined with ErrFailedToSendEmail.
// There are no retries here; the caller decides what a failure means.
package email
