// Package templates holds the HTML building blocks for notification emails.
//
// Components are templ.Component values, so they compose and render like any
// templ template. All text and attribute values are escaped; hrefs pass through
// templ.URL sanitization.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	brandColor   = "#667eea"
	successColor = "#28a745"
)

// Layout wraps content in the branded single-column email frame.
// subheading may be empty.
func Layout(heading, subheading string, content ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`,
			`<div style="background: `, brandColor, `; color: white; padding: 20px; text-align: center;">`,
			`<h1>`, templ.EscapeString(heading), `</h1>`,
		); err != nil {
			return err
		}
		if subheading != "" {
			if err := write(w, `<p>`, templ.EscapeString(subheading), `</p>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`, `<div style="padding: 20px; background: #f8f9fa;">`); err != nil {
			return err
		}
		for _, c := range content {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</div></div>`)
	})
}

// Paragraph renders inline parts inside a <p>.
func Paragraph(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<p>`); err != nil {
			return err
		}
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</p>`)
	})
}

// Text is escaped inline text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, templ.EscapeString(s))
	})
}

// Strong is escaped inline text in <strong>.
func Strong(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<strong>`, templ.EscapeString(s), `</strong>`)
	})
}

// Link is an inline anchor.
func Link(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<a href="`, safeHref(href), `">`, templ.EscapeString(label), `</a>`)
	})
}

// Greeting renders "Hello <strong>name</strong>,".
func Greeting(name string) templ.Component {
	return Paragraph(Text("Hello "), Strong(name), Text(","))
}

// Notice renders small print, e.g. an expiry warning.
func Notice(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<p><small>`, templ.EscapeString(s), `</small></p>`)
	})
}

// Code displays a verification or team code in a large highlighted block.
func Code(code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div style="background: `, brandColor, `; color: white; padding: 15px; text-align: center; `,
			`font-size: 24px; font-weight: bold; margin: 20px 0; border-radius: 5px; letter-spacing: 2px;">`,
			templ.EscapeString(code),
			`</div>`,
		)
	})
}

// Button is a call-to-action link styled as a button.
func Button(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<a href="`, safeHref(href), `" style="display: inline-block; padding: 12px 24px; background: `, successColor,
			`; color: white; text-decoration: none; border-radius: 5px; margin: 10px 0;">`,
			templ.EscapeString(label),
			`</a>`,
		)
	})
}

func safeHref(href string) string {
	return templ.EscapeString(string(templ.URL(href)))
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
