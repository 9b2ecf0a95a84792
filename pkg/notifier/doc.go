// Package notifier sends the emails of the registration flow: verification
// codes for new accounts and team members, and join codes for team leaders.
//
// The one rule the package enforces is that email trouble never blocks
// registration. Every send operation returns an Outcome with Succeeded=true and
// the code echoed back, whether the provider accepted the message, was never
// configured, returned an error, or panicked. The code is also written to the
// log on every call, so it can be recovered from the server console when the
// inbox stays empty.
//
//	var (
//	    cfg     notifier.Config
//	    mailCfg email.Config
//	)
//	config.MustLoad(&cfg)
//	config.MustLoad(&mailCfg)
//
//	n := notifier.NewFromConfig(cfg, mailCfg, notifier.WithLogger(log))
//
//	code := notifier.GenerateCode()
//	out := n.SendVerificationEmail(ctx, "user@example.com", "Ada", token, code)
//	// out.Succeeded is always true; out.Method is for diagnostics only.
//
// TestConnection is the exception: it exists for operators and reports
// Succeeded=false when the provider is unreachable or not configured.
package notifier
