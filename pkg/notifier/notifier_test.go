package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wizdesk/notify/pkg/email"
	"github.com/wizdesk/notify/pkg/logger"
	"github.com/wizdesk/notify/pkg/notifier"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) (email.Receipt, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.Receipt), args.Error(1)
}

type panicSender struct{}

func (panicSender) Send(context.Context, email.Message) (email.Receipt, error) {
	panic("sdk exploded")
}

var testConfig = notifier.Config{
	AppName: "WizDesk",
	BaseURL: "https://example.test",
}

func newNotifier(t *testing.T, sender email.Sender, opts ...notifier.Option) (*notifier.Notifier, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	opts = append([]notifier.Option{notifier.WithLogger(logger.New(logger.WithOutput(buf)))}, opts...)
	return notifier.New(testConfig, sender, opts...), buf
}

func captureMessage(m *mockSender, receipt email.Receipt, err error) *email.Message {
	var got email.Message
	m.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Run(func(args mock.Arguments) { got = args.Get(1).(email.Message) }).
		Return(receipt, err).
		Once()
	return &got
}

func TestNotifier_Unconfigured(t *testing.T) {
	t.Parallel()

	n, logs := newNotifier(t, nil)

	ctx := context.Background()
	outcomes := map[string]notifier.Outcome{
		"verification": n.SendVerificationEmail(ctx, "user@x.com", "User", "tok-1", "482913"),
		"member":       n.SendMemberVerificationEmail(ctx, "user@x.com", "User", "Rocket", "tok-2", "111222"),
		"team":         n.SendTeamCodeToLeader(ctx, "lead@x.com", "Lead", "TEAM-42", "Rocket"),
	}

	for name, out := range outcomes {
		assert.True(t, out.Succeeded, name)
		assert.Equal(t, notifier.MethodFallback, out.Method, name)
		assert.False(t, out.EmailSent(), name)
		assert.Empty(t, out.MessageID, name)
		assert.Empty(t, out.Error, name)
	}

	assert.Equal(t, "482913", outcomes["verification"].Code)
	assert.Equal(t, "Verification code: 482913 (check server console)", outcomes["verification"].Note)
	assert.Equal(t, "111222", outcomes["member"].Code)
	assert.Equal(t, "TEAM-42", outcomes["team"].TeamCode)
	assert.Empty(t, outcomes["team"].Code)

	assert.False(t, n.Configured())
	assert.Contains(t, logs.String(), "482913")
	assert.Contains(t, logs.String(), "TEAM-42")
}

func TestNotifier_ProviderSuccess(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	got := captureMessage(sender, email.Receipt{MessageID: "msg-1"}, nil)
	n, logs := newNotifier(t, sender)

	out := n.SendVerificationEmail(context.Background(), "user@x.com", "User", "abc123", "482913")
	require.NotEmpty(t, got.To, "provider must receive the message")

	assert.Equal(t, notifier.Outcome{
		Succeeded: true,
		Method:    notifier.MethodProvider,
		MessageID: "msg-1",
		Code:      "482913",
	}, out)
	assert.True(t, out.EmailSent())
	sender.AssertExpectations(t)
	assert.Contains(t, logs.String(), `"duration":`)

	assert.Equal(t, "user@x.com", got.To)
	assert.Equal(t, "Verify Your Email - WizDesk Registration", got.Subject)
	assert.Equal(t, "verification", got.Tag)
	assert.Contains(t, got.HTML, "482913")
	assert.Contains(t, got.HTML, `href="https://example.test/verify-email.html?token=abc123"`)
	assert.Contains(t, got.HTML, "This code will expire in 1 hour.")
	assert.Contains(t, got.Text, "Your verification code: 482913")
	assert.Contains(t, got.Text, "Or click: https://example.test/verify-email.html?token=abc123")
}

func TestNotifier_ProviderFailure(t *testing.T) {
	t.Parallel()

	providerErr := errors.Join(email.ErrFailedToSendEmail, errors.New("503 from provider"))

	t.Run("member verification", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		got := captureMessage(sender, email.Receipt{}, providerErr)
		n, logs := newNotifier(t, sender)

		out := n.SendMemberVerificationEmail(context.Background(), "m@x.com", "Member", "Rocket", "abc123", "654321")

		assert.True(t, out.Succeeded)
		assert.Equal(t, notifier.MethodFallbackAfterError, out.Method)
		assert.Equal(t, "654321", out.Code)
		assert.Contains(t, out.Error, "503 from provider")
		assert.Contains(t, logs.String(), "FALLBACK - Member verification code: 654321")

		assert.Equal(t, "Verify Your Email - Join Rocket", got.Subject)
		assert.Contains(t, got.HTML, `href="https://example.test/verify-member-email.html?token=abc123"`)
		assert.Contains(t, got.HTML, "<strong>Rocket</strong>")
	})

	t.Run("team code", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		got := captureMessage(sender, email.Receipt{}, providerErr)
		n, _ := newNotifier(t, sender)

		out := n.SendTeamCodeToLeader(context.Background(), "lead@x.com", "Lead", "TEAM-42", "Rocket")

		assert.True(t, out.Succeeded)
		assert.Equal(t, notifier.MethodFallbackAfterError, out.Method)
		assert.Equal(t, "TEAM-42", out.TeamCode)
		assert.Equal(t, "Welcome to WizDesk - Your Team Code for Rocket", got.Subject)
		assert.Contains(t, got.HTML, "TEAM-42")
		assert.Contains(t, got.HTML, "https://example.test/member-register.html")
		assert.Contains(t, got.Text, "Team Code: TEAM-42")
	})
}

func TestNotifier_ProviderPanic(t *testing.T) {
	t.Parallel()

	n, logs := newNotifier(t, panicSender{})

	out := n.SendVerificationEmail(context.Background(), "user@x.com", "User", "tok", "123456")
	assert.True(t, out.Succeeded)
	assert.Equal(t, notifier.MethodFallbackAfterError, out.Method)
	assert.Equal(t, "123456", out.Code)
	assert.Contains(t, out.Error, "sdk exploded")
	assert.Contains(t, logs.String(), "123456")

	status := n.TestConnection(context.Background())
	assert.True(t, status.Configured)
	assert.False(t, status.Succeeded)
	assert.Contains(t, status.Message, "sdk exploded")
}

func TestNotifier_EscapesUserInput(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	got := captureMessage(sender, email.Receipt{MessageID: "m"}, nil)
	n, _ := newNotifier(t, sender)

	n.SendVerificationEmail(context.Background(), "user@x.com", "<b>Mallory</b>", "tok", "123456")

	assert.NotContains(t, got.HTML, "<b>Mallory</b>")
	assert.Contains(t, got.HTML, "&lt;b&gt;Mallory&lt;/b&gt;")
	assert.Contains(t, got.Text, "Hello <b>Mallory</b>,", "plain text is not escaped")
}

func TestNotifier_SubjectHeaderInjection(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	got := captureMessage(sender, email.Receipt{MessageID: "m"}, nil)
	n, _ := newNotifier(t, sender)

	out := n.SendMemberVerificationEmail(context.Background(), "m@x.com", "Member",
		"Rocket\r\nBcc: victim@example.com", "abc123", "654321")

	assert.Equal(t, notifier.MethodProvider, out.Method)
	assert.Equal(t, "Verify Your Email - Join Rocket Bcc: victim@example.com", got.Subject)
	assert.NotContains(t, got.Subject, "\n")
	assert.NotContains(t, got.Text, "\r")
}

func TestNotifier_SendTimeout(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "provider call must be bounded")
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)
		}).
		Return(email.Receipt{MessageID: "m"}, nil).
		Once()

	cfg := testConfig
	cfg.SendTimeout = 50 * time.Millisecond
	n := notifier.New(cfg, sender, notifier.WithLogger(logger.Discard()))

	out := n.SendVerificationEmail(context.Background(), "user@x.com", "User", "tok", "123456")
	assert.Equal(t, notifier.MethodProvider, out.Method)
	sender.AssertExpectations(t)
}

func TestNotifier_LogOnlyNotifications(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	n, logs := newNotifier(t, sender)
	ctx := context.Background()

	out := n.SendMemberApprovalNotification(ctx, "m@x.com", "Member", "Lead", "Rocket")
	assert.Equal(t, notifier.Outcome{Succeeded: true, Method: notifier.MethodConsole}, out)

	out = n.SendNewMemberNotificationToLeader(ctx, "lead@x.com", "Lead", "Member", "m@x.com", "Rocket")
	assert.Equal(t, notifier.Outcome{Succeeded: true, Method: notifier.MethodConsole}, out)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.Equal(t, 2, strings.Count(logs.String(), "\n"))
}

func TestNotifier_TestConnection(t *testing.T) {
	t.Parallel()

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		n, _ := newNotifier(t, nil, notifier.WithConfigError(email.ErrConfigMissing))
		status := n.TestConnection(context.Background())

		assert.False(t, status.Configured)
		assert.False(t, status.Succeeded)
		assert.Equal(t, email.ErrConfigMissing.Error(), status.Message)
	})

	t.Run("provider accepts", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		got := captureMessage(sender, email.Receipt{MessageID: "ping"}, nil)
		n, _ := newNotifier(t, sender)

		status := n.TestConnection(context.Background())
		assert.Equal(t, notifier.ConnectionStatus{Succeeded: true, Configured: true, Message: "email service is ready"}, status)
		require.NotEmpty(t, got.To, "provider must receive the test message")
		assert.Equal(t, notifier.ConnectionTestRecipient, got.To)
		assert.Equal(t, "WizDesk - Email Service Test", got.Subject)
	})

	t.Run("provider rejects", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		captureMessage(sender, email.Receipt{}, errors.New("invalid api key"))
		n, _ := newNotifier(t, sender)

		status := n.TestConnection(context.Background())
		assert.True(t, status.Configured)
		assert.False(t, status.Succeeded)
		assert.Equal(t, "invalid api key", status.Message)
	})
}

func TestLinks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.test/verify-email.html?token=abc123", notifier.VerificationLink("https://example.test", "abc123"))
	assert.Equal(t, "https://example.test/verify-member-email.html?token=abc123", notifier.MemberVerificationLink("https://example.test", "abc123"))
	assert.Equal(t, "https://example.test/member-register.html", notifier.MemberRegistrationURL("https://example.test"))
}

func TestNew_TrimsBaseURL(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	n := notifier.New(notifier.Config{BaseURL: "https://example.test/"}, nil, notifier.WithLogger(logger.New(logger.WithOutput(buf))))
	n.SendVerificationEmail(context.Background(), "user@x.com", "User", "abc123", "482913")

	assert.Contains(t, buf.String(), `"link":"https://example.test/verify-email.html?token=abc123"`)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "https", baseURL: "https://example.test"},
		{name: "http with port", baseURL: "http://localhost:3000"},
		{name: "missing scheme", baseURL: "localhost:3000", wantErr: true},
		{name: "relative path", baseURL: "/app", wantErr: true},
		{name: "unsupported scheme", baseURL: "ftp://example.test", wantErr: true},
		{name: "scheme without host", baseURL: "https://", wantErr: true},
		{name: "unparsable", baseURL: "http://exa mple.test:port", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := notifier.Config{BaseURL: tt.baseURL}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, notifier.ErrInvalidBaseURL)
		})
	}
}

func TestNew_WarnsOnUnusableBaseURL(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	notifier.New(notifier.Config{BaseURL: "localhost:3000"}, nil, notifier.WithLogger(logger.New(logger.WithOutput(buf))))

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"base_url":"localhost:3000"`)

	buf.Reset()
	notifier.New(testConfig, nil, notifier.WithLogger(logger.New(logger.WithOutput(buf))))
	assert.Empty(t, buf.String())
}
