package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger prints progress messages to the console and, when a log file is
// configured, records every message there with a timestamp.
type Logger struct {
	console io.Writer
	logFile *os.File
	file    *slog.Logger
}

// NewLogger writes progress to console. If logFile is empty no file is
// created and Log only reaches the console through Logf.
func NewLogger(console io.Writer, logFile string) (*Logger, error) {
	l := &Logger{console: console}
	if logFile == "" {
		return l, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}
	l.logFile = f
	l.file = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l, nil
}

// Log records msg in the log file only.
func (l *Logger) Log(msg string, args ...any) {
	if l.file != nil {
		l.file.Info(msg, args...)
	}
}

// Logf records the message and echoes it to the console.
func (l *Logger) Logf(format string, args ...any) {
	logEntry := fmt.Sprintf(format, args...)
	l.Log(logEntry)
	fmt.Fprintln(l.console, logEntry)
}

func (l *Logger) Error(msg string, err error) {
	if l.file != nil {
		l.file.Error(msg, "err", err)
	}
}

func (l *Logger) Close() error {
	if l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}
