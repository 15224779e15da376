// Package logger builds *slog.Logger values from functional options and
// provides helper attribute constructors for consistent key naming.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg) // LOG_LEVEL, LOG_FORMAT
//
//	log := logger.New(
//	    logger.WithConfig(cfg),
//	    logger.WithAttr(logger.Component("fixtures")),
//	)
//	gen := rut.NewGenerator(rut.WithLogger(log))
//
// Components that log take an optional *slog.Logger and fall back to Discard.
//
// Helper constructors Error and Errors produce attributes only for non-nil
// errors, so they can be passed without a nil check:
//
//	log.Info("batch built", logger.Error(err))
package logger
