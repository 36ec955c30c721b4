package logging

import (
	"context"
	"log/slog"
)

// Info, Warn and Error are no-ops on a nil logger so optional loggers need no guards.

func Info(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelInfo, msg, args)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelWarn, msg, args)
}

// Error attaches err under FieldError before the caller's attributes.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{slog.Any(FieldError, err)}, args...)
	}
	emit(logger, slog.LevelError, msg, args)
}

func emit(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
