// Package environment carries the runtime environment name (development,
// staging, production) through context.Context and into structured logs.
//
// The notifier reads RUNTIME_ENVIRONMENT once at startup and never branches on it
// for delivery decisions; it only selects the log format and is attached to log
// records via LoggerExtractor.
//
//	env := environment.Parse(os.Getenv("RUNTIME_ENVIRONMENT"))
//	ctx = environment.WithContext(ctx, env)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... env=production
package environment
