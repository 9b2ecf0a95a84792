package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wizdesk/notify/pkg/email"
	"github.com/wizdesk/notify/pkg/logger"
)

// Notifier sends registration emails. Delivery problems never surface as
// errors: every send returns an Outcome with Succeeded set, and the code is
// always written to the log so operators can recover it.
//
// A Notifier is immutable after construction and safe for concurrent use.
type Notifier struct {
	cfg       Config
	sender    email.Sender
	configErr error
	log       *slog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger sets the logger that doubles as the fallback channel.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.log = l
		}
	}
}

// WithConfigError records why no sender is available. It only affects
// diagnostics (TestConnection and log messages).
func WithConfigError(err error) Option {
	return func(n *Notifier) { n.configErr = err }
}

// New returns a Notifier that delivers through sender. A nil sender puts the
// notifier in fallback-only mode: nothing is sent and codes are only logged.
func New(cfg Config, sender email.Sender, opts ...Option) *Notifier {
	n := &Notifier{
		cfg:    cfg.withDefaults(),
		sender: sender,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.sender == nil && n.configErr == nil {
		n.configErr = ErrNotConfigured
	}
	n.log = n.log.With(logger.Component("notifier"))

	if err := n.cfg.Validate(); err != nil {
		n.log.Warn("application base URL is unusable, email buttons will not link",
			slog.String("base_url", n.cfg.BaseURL),
			logger.Error(err),
		)
	}
	return n
}

// NewFromConfig builds the provider sender from mailCfg. If the provider
// configuration is missing or malformed, the notifier still starts, in
// fallback-only mode, and the reason is logged once.
func NewFromConfig(cfg Config, mailCfg email.Config, opts ...Option) *Notifier {
	sender, err := email.NewSender(mailCfg)
	if err != nil {
		opts = append(opts, WithConfigError(err))
	}
	n := New(cfg, sender, opts...)

	if err != nil {
		n.log.Warn("email provider unavailable, codes will only be logged",
			logger.Provider(string(mailCfg.Provider)),
			slog.String("runtime_environment", n.cfg.Environment),
			logger.Error(err),
		)
	} else {
		n.log.Info("email provider configured",
			logger.Provider(string(mailCfg.Provider)),
			slog.String("runtime_environment", n.cfg.Environment),
		)
	}
	return n
}

// Configured reports whether a provider is available.
func (n *Notifier) Configured() bool {
	return n.sender != nil
}

// TestConnection sends one message to ConnectionTestRecipient. Without a
// provider it returns immediately with Configured=false and makes no call.
// It is the only operation that reports Succeeded=false.
func (n *Notifier) TestConnection(ctx context.Context) (status ConnectionStatus) {
	if n.sender == nil {
		return ConnectionStatus{Message: n.configErr.Error()}
	}

	status.Configured = true
	defer func() {
		if r := recover(); r != nil {
			status.Succeeded = false
			status.Message = fmt.Errorf("%w: %v", ErrUnexpected, r).Error()
			n.log.ErrorContext(ctx, "email connection test panicked", slog.Any("panic", r))
		}
	}()

	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	receipt, err := n.sender.Send(ctx, connectionTestMessage(n.cfg.AppName))
	if err != nil {
		n.log.ErrorContext(ctx, "email connection test failed", logger.Error(err))
		status.Message = err.Error()
		return status
	}

	n.log.InfoContext(ctx, "email connection test succeeded", logger.MessageID(receipt.MessageID))
	status.Succeeded = true
	status.Message = "email service is ready"
	return status
}

// SendVerificationEmail sends the registration verification code and link.
// The code and link are logged regardless of the delivery result.
func (n *Notifier) SendVerificationEmail(ctx context.Context, to, name, token, code string) Outcome {
	link := VerificationLink(n.cfg.BaseURL, token)

	n.log.InfoContext(ctx, "verification code issued",
		logger.Event(tagVerification),
		logger.Recipient(to),
		slog.String("name", name),
		slog.String("code", code),
		slog.String("link", link),
	)

	return n.deliver(ctx, delivery{
		event: tagVerification,
		to:    to,
		label: "Verification code",
		code:  code,
		build: func(ctx context.Context) (email.Message, error) {
			return verificationMessage(ctx, n.cfg.AppName, to, name, link, code)
		},
	})
}

// SendMemberVerificationEmail sends the verification code to someone joining
// an existing team.
func (n *Notifier) SendMemberVerificationEmail(ctx context.Context, to, name, team, token, code string) Outcome {
	link := MemberVerificationLink(n.cfg.BaseURL, token)

	n.log.InfoContext(ctx, "member verification code issued",
		logger.Event(tagMemberVerification),
		logger.Recipient(to),
		slog.String("name", name),
		slog.String("team", team),
		slog.String("code", code),
		slog.String("link", link),
	)

	return n.deliver(ctx, delivery{
		event: tagMemberVerification,
		to:    to,
		label: "Member verification code",
		code:  code,
		build: func(ctx context.Context) (email.Message, error) {
			return memberVerificationMessage(ctx, n.cfg.AppName, to, name, team, link, code)
		},
	})
}

// SendTeamCodeToLeader sends a newly created team's join code to its leader.
func (n *Notifier) SendTeamCodeToLeader(ctx context.Context, to, leaderName, teamCode, team string) Outcome {
	registerURL := MemberRegistrationURL(n.cfg.BaseURL)

	n.log.InfoContext(ctx, "team code issued",
		logger.Event(tagTeamCode),
		logger.Recipient(to),
		slog.String("name", leaderName),
		slog.String("team", team),
		slog.String("team_code", teamCode),
	)

	return n.deliver(ctx, delivery{
		event:    tagTeamCode,
		to:       to,
		label:    "Team code",
		teamCode: teamCode,
		build: func(ctx context.Context) (email.Message, error) {
			return teamCodeMessage(ctx, n.cfg.AppName, to, leaderName, teamCode, team, registerURL)
		},
	})
}

// SendMemberApprovalNotification only logs; no email is sent.
func (n *Notifier) SendMemberApprovalNotification(ctx context.Context, memberEmail, memberName, leaderName, team string) Outcome {
	n.log.InfoContext(ctx, "member approved",
		logger.Event("member-approval"),
		logger.Recipient(memberEmail),
		slog.String("name", memberName),
		slog.String("leader", leaderName),
		slog.String("team", team),
		logger.Method(string(MethodConsole)),
	)
	return Outcome{Succeeded: true, Method: MethodConsole}
}

// SendNewMemberNotificationToLeader only logs; no email is sent.
func (n *Notifier) SendNewMemberNotificationToLeader(ctx context.Context, leaderEmail, leaderName, memberName, memberEmail, team string) Outcome {
	n.log.InfoContext(ctx, "new member joined",
		logger.Event("new-member"),
		logger.Recipient(leaderEmail),
		slog.String("leader", leaderName),
		slog.String("member", memberName),
		slog.String("member_email", memberEmail),
		slog.String("team", team),
		logger.Method(string(MethodConsole)),
	)
	return Outcome{Succeeded: true, Method: MethodConsole}
}

// delivery describes one provider attempt. Exactly one of code and teamCode
// is set; it is echoed back in the Outcome.
type delivery struct {
	event    string
	to       string
	label    string
	code     string
	teamCode string
	build    func(context.Context) (email.Message, error)
}

func (d delivery) value() string {
	if d.teamCode != "" {
		return d.teamCode
	}
	return d.code
}

// deliver applies the fallback policy around a single provider call.
func (n *Notifier) deliver(ctx context.Context, d delivery) (out Outcome) {
	out = Outcome{Succeeded: true, Code: d.code, TeamCode: d.teamCode}

	if n.sender == nil {
		out.Method = MethodFallback
		out.Note = fmt.Sprintf("%s: %s (check server console)", d.label, d.value())
		n.log.InfoContext(ctx, "email provider not configured, using console fallback",
			logger.Event(d.event),
			logger.Recipient(d.to),
			logger.Method(string(out.Method)),
		)
		return out
	}

	defer func() {
		if r := recover(); r != nil {
			out = n.fallbackAfterError(ctx, d, fmt.Errorf("%w: %v", ErrUnexpected, r))
		}
	}()

	msg, err := d.build(ctx)
	if err != nil {
		return n.fallbackAfterError(ctx, d, errors.Join(ErrUnexpected, err))
	}

	sendCtx, cancel := n.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	receipt, err := n.sender.Send(sendCtx, msg)
	elapsed := logger.Duration(time.Since(start))
	if err != nil {
		return n.fallbackAfterError(ctx, d, err, elapsed)
	}

	out.Method = MethodProvider
	out.MessageID = receipt.MessageID
	n.log.InfoContext(ctx, "email sent",
		logger.Event(d.event),
		logger.Recipient(d.to),
		logger.Method(string(out.Method)),
		logger.MessageID(receipt.MessageID),
		elapsed,
	)
	return out
}

func (n *Notifier) fallbackAfterError(ctx context.Context, d delivery, err error, attrs ...slog.Attr) Outcome {
	args := []any{
		logger.Event(d.event),
		logger.Recipient(d.to),
		logger.Method(string(MethodFallbackAfterError)),
		slog.String("fallback", fmt.Sprintf("FALLBACK - %s: %s", d.label, d.value())),
		logger.Error(err),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	n.log.ErrorContext(ctx, "email delivery failed, using console fallback", args...)
	return Outcome{
		Succeeded: true,
		Method:    MethodFallbackAfterError,
		Code:      d.code,
		TeamCode:  d.teamCode,
		Note:      fmt.Sprintf("Email failed. %s: %s (check server console)", d.label, d.value()),
		Error:     err.Error(),
	}
}

func (n *Notifier) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if n.cfg.SendTimeout > 0 {
		return context.WithTimeout(ctx, n.cfg.SendTimeout)
	}
	return context.WithCancel(ctx)
}
