// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetchlog provides the attempt logger shared by the orchestrator and
// batch runner. A Logger fans each record out to an optional console logger
// and to any number of attached log files. Files are opened append-only and
// de-duplicated by resolved absolute path, so repeated resolutions targeting
// the same log file share one handle.
package fetchlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logger is an explicit logging handle with a lifecycle scoped to its owner,
// not to the process.
type Logger struct {
	console *slog.Logger

	mu    sync.Mutex
	files map[string]*fileTarget
}

type fileTarget struct {
	f   *os.File
	log *slog.Logger
}

// New returns a Logger writing to console. A nil console is allowed; records
// then go only to attached files.
func New(console *slog.Logger) *Logger {
	return &Logger{
		console: console,
		files:   make(map[string]*fileTarget),
	}
}

// Attach opens path for appending and adds it as a log destination. Attaching
// a path that resolves to an already-attached file is a no-op.
func (l *Logger) Attach(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving log path %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.files[abs]; ok {
		return nil
	}

	f, err := os.OpenFile(abs, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	l.files[abs] = &fileTarget{
		f:   f,
		log: slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
	return nil
}

// Close closes all attached log files. The console logger is untouched.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for abs, t := range l.files {
		if err := t.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(l.files, abs)
	}
	return firstErr
}

// Info logs at info level to the console and every attached file.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at warn level to the console and every attached file.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at error level to the console and every attached file.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil {
		return
	}
	if l.console != nil {
		l.console.Log(context.Background(), level, msg, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range l.files {
		t.log.Log(context.Background(), level, msg, args...)
	}
}
