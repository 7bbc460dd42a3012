// Package logger builds slog loggers for recordcheck.
//
// New returns a *slog.Logger configured by Option functions: output format
// (text or JSON), minimum level, static attributes and ContextExtractor
// callbacks. The handler is wrapped in LogHandlerDecorator, which runs the
// extractors on every record. The run identifier stored with WithRunID is
// always extracted, so every line of a validation run can be correlated.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "recordcheck"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//	ctx := logger.WithRunID(ctx, runID.String())
//	log.InfoContext(ctx, "records loaded",
//	    logger.Source("data.json"),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
//
// Loggers write to stderr by default. Standard output is reserved for reports.
package logger
