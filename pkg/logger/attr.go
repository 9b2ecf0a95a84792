package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Recipient records an email address under "recipient".
func Recipient(addr string) slog.Attr {
	return slog.String("recipient", addr)
}

// Provider records the email provider name under "provider".
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Method records how a message was delivered under "delivery_method".
func Method(m string) slog.Attr {
	return slog.String("delivery_method", m)
}

// MessageID records a provider message id under "message_id".
// An empty id yields an empty Attr.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Duration records elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
