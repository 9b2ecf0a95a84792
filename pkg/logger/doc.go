// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so that field names stay consistent.
//
// New picks a JSON or text handler, applies static attributes, and wraps the
// result in LogHandlerDecorator, which adds attributes pulled from the context of
// each call (see ContextExtractor).
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("RUNTIME_ENVIRONMENT")), "notifier"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "verification code issued",
//	    logger.Recipient(to),
//	    logger.Method("fallback"),
//	)
//
// For the notifier the logger is more than diagnostics: it is the fallback
// delivery channel, so verification and team codes are written at INFO level.
package logger
