// Package sanitizer cleans user-supplied strings before they are placed into
// email headers and bodies.
//
// The helpers are small and composable:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	)
//	subject := clean(teamName)
//
// HeaderValue is the pipeline applied to names placed into outgoing messages.
// HTML escaping is not done here; templates escape on render.
package sanitizer
