package util

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a LOG_LEVEL value onto a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch Normalize(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func noopClose() error { return nil }

// NewLogger writes to logFile when set, otherwise to stdout. The returned
// closer syncs the logger and releases the log file.
func NewLogger(level, logFile string) (*zap.Logger, func() error, error) {
	if logFile == "" {
		logger := NewLoggerTo(os.Stdout, level)
		return logger, func() error { _ = logger.Sync(); return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := NewLoggerTo(file, level)
	return logger, func() error {
		_ = logger.Sync()
		return file.Close()
	}, nil
}

// NewTerminalLogger is used while a full-screen UI owns stdout: without a
// log file nothing is written.
func NewTerminalLogger(level, logFile string) (*zap.Logger, func() error, error) {
	if logFile == "" {
		return zap.NewNop(), noopClose, nil
	}
	return NewLogger(level, logFile)
}

// NewLoggerTo builds the console-encoded logger on an arbitrary writer.
func NewLoggerTo(w io.Writer, level string) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(w),
		ParseLevel(level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
