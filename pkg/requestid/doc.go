// Package requestid carries a correlation id through a context so that every
// log record produced while handling one probe request or one CLI run can be
// grouped together.
//
// HTTP handlers get the id from Middleware, which honours a well-formed
// X-Request-ID header and generates a UUID otherwise. Non-HTTP entry points
// call Ensure:
//
//	ctx, id := requestid.Ensure(ctx)
//
// Register LoggerExtractor with the logger to emit the id as "request_id".
package requestid
