// Package logger builds the service's *slog.Logger.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the resulting handler with LogHandlerDecorator, which injects
// request-scoped attributes pulled from context.Context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "blog"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "category created", logger.CategoryID(c.ID))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
