// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers shared by the dto packages.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which injects attributes taken from the
// context of every *Context call:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("source", sourceKey{}),
//	)
//	log.InfoContext(ctx, "record validated",
//	    logger.Record("Signup"),
//	    logger.Failures(rec.Errors()),
//	)
//
// ParseFormat and ParseLevel turn configuration strings into options.
// Error, Errors and Failures return an empty attribute for nil input, so
// they can be passed without a nil check.
package logger
