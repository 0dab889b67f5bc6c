package logging

import "log/slog"

// WithStage creates a logger with pipeline-stage context.
//
// Example:
//
//	log := logging.WithStage("pivot")
//	log.Debug("validated columns", "pivot_col", name)
func WithStage(stage string) *slog.Logger {
	return GetLogger().With("stage", stage)
}

// WithInput creates a logger with input-source context. Use this for
// ingestion so every record-level message names its file.
func WithInput(path string) *slog.Logger {
	return GetLogger().With("input", path)
}
