package notifier

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default values applied when Config fields are empty.
const (
	DefaultAppName = "WizDesk"
	DefaultBaseURL = "https://wizdesk.onrender.com"
)

// Config is the process-wide notifier configuration. It is loaded once at
// startup and never re-read.
type Config struct {
	AppName     string        `env:"APP_NAME" envDefault:"WizDesk"`
	BaseURL     string        `env:"APPLICATION_BASE_URL" envDefault:"https://wizdesk.onrender.com"`
	Environment string        `env:"RUNTIME_ENVIRONMENT" envDefault:"development"`
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"10s"` // zero disables the timeout
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c
}

// Validate checks that BaseURL is an absolute http or https URL. Links built
// from anything else are rejected by the HTML templates.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Join(ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidBaseURL, c.BaseURL)
	}
	return nil
}
