package email

// Provider names a Sender implementation.
type Provider string

const (
	ProviderResend   Provider = "resend"
	ProviderSendGrid Provider = "sendgrid"
	ProviderPostmark Provider = "postmark"
	ProviderSMTP     Provider = "smtp"
	// ProviderFile writes messages to disk. Development only.
	ProviderFile Provider = "file"
)

// DefaultSender is used when EMAIL_FROM is empty.
const DefaultSender = "WizDesk <onboarding@resend.dev>"

// Config selects and configures the email provider.
// APIKey is optional: without it NewSender reports ErrConfigMissing and callers
// are expected to run without a provider.
type Config struct {
	Provider     Provider `env:"EMAIL_PROVIDER" envDefault:"resend"`
	APIKey       string   `env:"PROVIDER_API_KEY"`
	AccountToken string   `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string   `env:"EMAIL_FROM" envDefault:"WizDesk <onboarding@resend.dev>"`
	// APIBaseURL overrides the provider's HTTP endpoint (resend, sendgrid, postmark).
	APIBaseURL string `env:"EMAIL_API_BASE_URL"`
	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser   string `env:"SMTP_USER"`
	DevDir     string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

func (c Config) sender() string {
	if c.SenderEmail == "" {
		return DefaultSender
	}
	return c.SenderEmail
}
