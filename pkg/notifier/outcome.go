package notifier

// DeliveryMethod reports how a notification reached (or failed to reach) the
// recipient. It is meant for operator diagnostics; callers must not branch on it.
type DeliveryMethod string

const (
	// MethodProvider: the provider accepted the message.
	MethodProvider DeliveryMethod = "provider"
	// MethodFallback: no provider is configured; the code is only in the logs.
	MethodFallback DeliveryMethod = "fallback"
	// MethodFallbackAfterError: the provider call failed; the code is only in the logs.
	MethodFallbackAfterError DeliveryMethod = "fallback-after-error"
	// MethodConsole: the notification is log-only by design.
	MethodConsole DeliveryMethod = "console"
)

// Outcome is returned by every send operation. Succeeded is always true:
// registration must not be blocked by email delivery, so failures are
// reported through Method and Error instead.
type Outcome struct {
	Succeeded bool           `json:"succeeded"`
	Method    DeliveryMethod `json:"delivery_method"`
	MessageID string         `json:"message_id,omitempty"`
	Code      string         `json:"code,omitempty"`
	TeamCode  string         `json:"team_code,omitempty"`
	Note      string         `json:"note,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// EmailSent reports whether the provider accepted the message.
func (o Outcome) EmailSent() bool {
	return o.Method == MethodProvider
}

// ConnectionStatus is the result of TestConnection.
type ConnectionStatus struct {
	Succeeded  bool   `json:"succeeded"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}
