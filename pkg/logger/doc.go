// Package logger creates the slog loggers used across the state layer. It
// supports JSON output for log aggregation and text output for development,
// with static attributes attached to every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(slog.String("component", "cart")),
//	)
package logger
