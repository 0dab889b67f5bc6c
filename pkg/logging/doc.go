// Package logging provides a process-wide structured logger for gopivot.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. All subsystems
// should obtain a logger through this package rather than constructing their
// own slog.Logger values, so that log level and format are controlled from
// a single place. Output defaults to stderr; stdout is reserved for
// rendered pivot results.
//
// # Initialisation
//
// Call Init (or InitDefault for sensible defaults) once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Retrieving the logger
//
//	logger := logging.GetLogger()
//	logger.Info("table loaded", "rows", tbl.NumRows())
//
// If GetLogger is called before Init, a default stderr logger is created
// lazily (via sync.Once) so that packages that log during init are safe.
//
// # Context helpers
//
// Helpers return child loggers pre-populated with structured fields:
//
//	log := logging.WithStage("pivot")  // adds stage field
//	log := logging.WithInput(path)     // adds input field
package logging
