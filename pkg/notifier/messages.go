package notifier

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/wizdesk/notify/pkg/email"
	"github.com/wizdesk/notify/pkg/email/templates"
	"github.com/wizdesk/notify/pkg/sanitizer"
)

// ConnectionTestRecipient is the sentinel address used by TestConnection.
const ConnectionTestRecipient = "test@example.com"

const expiryNotice = "This code will expire in 1 hour."

// Message tags, also used as log events.
const (
	tagVerification       = "verification"
	tagMemberVerification = "member-verification"
	tagTeamCode           = "team-code"
	tagConnectionTest     = "connection-test"
)

// VerificationLink builds the primary registration verification URL.
// The format is relied upon by the front end and must not change.
func VerificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/verify-email.html?token=%s", baseURL, token)
}

// MemberVerificationLink builds the team member verification URL.
func MemberVerificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/verify-member-email.html?token=%s", baseURL, token)
}

// MemberRegistrationURL is where prospective members enter a team code.
func MemberRegistrationURL(baseURL string) string {
	return baseURL + "/member-register.html"
}

// Names and team names end up in the Subject header and in the bodies, so
// every builder passes them through sanitizer.HeaderValue first.

func verificationMessage(ctx context.Context, app, to, name, link, code string) (email.Message, error) {
	name = sanitizer.HeaderValue(name)

	html, err := templates.Render(ctx, templates.Layout(
		"Verify Your Email", "",
		templates.Greeting(name),
		templates.Paragraph(templates.Text(fmt.Sprintf("Thank you for registering with %s! Use the verification code below:", app))),
		templates.Code(code),
		templates.Paragraph(templates.Text("Or click the button below to verify automatically:")),
		templates.Button("Verify Email", link),
		templates.Notice(expiryNotice),
	))
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("Verify Your Email - %s Registration", app),
		HTML:    html,
		Text: fmt.Sprintf("Verify Your Email - %s\n\nHello %s,\n\nYour verification code: %s\n\nOr click: %s\n\n%s",
			app, name, code, link, expiryNotice),
		Tag: tagVerification,
	}, nil
}

func memberVerificationMessage(ctx context.Context, app, to, name, team, link, code string) (email.Message, error) {
	name, team = sanitizer.HeaderValue(name), sanitizer.HeaderValue(team)

	html, err := templates.Render(ctx, templates.Layout(
		"Join "+team, "",
		templates.Greeting(name),
		templates.Paragraph(templates.Text("You're joining "), templates.Strong(team), templates.Text(fmt.Sprintf(" on %s!", app))),
		templates.Code(code),
		templates.Paragraph(templates.Text("Or click here to verify: "), templates.Link("Verify Email", link)),
		templates.Notice(expiryNotice),
	))
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		To:      to,
		Subject: "Verify Your Email - Join " + team,
		HTML:    html,
		Text: fmt.Sprintf("Join %s - %s\n\nHello %s,\n\nYour verification code: %s\n\nOr click: %s\n\n%s",
			team, app, name, code, link, expiryNotice),
		Tag: tagMemberVerification,
	}, nil
}

func teamCodeMessage(ctx context.Context, app, to, leader, teamCode, team, registerURL string) (email.Message, error) {
	leader, team = sanitizer.HeaderValue(leader), sanitizer.HeaderValue(team)

	html, err := templates.Render(ctx, templates.Layout(
		fmt.Sprintf("Welcome to %s!", app), "Your team has been created successfully",
		templates.Greeting(leader),
		templates.Paragraph(
			templates.Text(fmt.Sprintf("Thank you for registering as a team leader on %s! Your team ", app)),
			templates.Strong(`"`+team+`"`),
			templates.Text(" has been created successfully."),
		),
		templates.Code(teamCode),
		templates.Paragraph(templates.Strong("Share this code with your team members so they can join your team.")),
		templates.Paragraph(templates.Text("Team members can register at: "), templates.Link(registerURL, registerURL)),
		templates.Paragraph(templates.Text("You can now login and start managing your team!")),
	))
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("Welcome to %s - Your Team Code for %s", app, team),
		HTML:    html,
		Text: fmt.Sprintf("Welcome to %s!\n\nHello %s,\n\nTeam: %s\nTeam Code: %s\n\nShare this code with your team members!\nTeam members register at: %s",
			app, leader, team, teamCode, registerURL),
		Tag: tagTeamCode,
	}, nil
}

func connectionTestMessage(app string) email.Message {
	return email.Message{
		To:      ConnectionTestRecipient,
		Subject: fmt.Sprintf("%s - Email Service Test", app),
		HTML:    "<strong>" + templ.EscapeString(fmt.Sprintf("Test email from %s Email Service", app)) + "</strong>",
		Text:    fmt.Sprintf("Test email from %s Email Service", app),
		Tag:     tagConnectionTest,
	}
}
