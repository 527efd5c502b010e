// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/hdlc/internal/core/ports"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

// metadataCarrier matches zerr.Error, which carries key-value context.
type metadataCarrier interface {
	Metadata() map[string]any
}

// registry holds the handler shared by a root logger and every named logger
// acquired from it.
type registry struct {
	mu       sync.RWMutex
	base     *slog.Logger
	jsonMode bool
	output   io.Writer
	named    map[string]*Logger
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	reg  *registry
	name string
}

// New creates a new root Logger writing pretty output to stderr.
func New() *Logger {
	reg := &registry{
		output: os.Stderr,
		named:  make(map[string]*Logger),
	}
	reg.rebuild()
	return &Logger{reg: reg}
}

// rebuild replaces the handler. The caller holds the write lock or owns reg.
func (r *registry) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if r.jsonMode {
		r.base = slog.New(slog.NewJSONHandler(r.output, opts))
		return
	}
	r.base = slog.New(NewPrettyHandler(r.output, opts))
}

// SetOutput updates the output destination of this logger and every named logger.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.reg.output = w
	l.reg.rebuild()
}

// SetJSON switches between JSON and pretty logging, keeping the output destination.
func (l *Logger) SetJSON(enable bool) {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()

	l.reg.jsonMode = enable
	l.reg.rebuild()
}

// Named returns the logger registered under name, creating it on first use.
func (l *Logger) Named(name string) ports.Logger {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()

	if named, ok := l.reg.named[name]; ok {
		return named
	}
	named := &Logger{reg: l.reg, name: name}
	l.reg.named[name] = named
	return named
}

// Name returns the name the logger was acquired with.
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) current() *slog.Logger {
	if l.name == "" {
		return l.reg.base
	}
	return l.reg.base.With("logger", l.name)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.reg.mu.RLock()
	defer l.reg.mu.RUnlock()
	l.current().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.reg.mu.RLock()
	defer l.reg.mu.RUnlock()
	l.current().Warn(msg)
}

// Error logs an error message. In pretty mode the error chain is unfolded
// into one line per cause.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.reg.mu.RLock()
	defer l.reg.mu.RUnlock()

	if l.reg.jsonMode {
		l.current().Error("operation failed", "error", err)
		return
	}
	l.current().Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. A foreign error ends
// the walk with its full message.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, entry := range entries {
		text := entry.message
		if len(entry.metadata) > 0 {
			text += " " + formatMetadata(entry.metadata)
		}
		parts := strings.Split(text, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any) string {
	keys := slices.Sorted(maps.Keys(metadata))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, metadata[k]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
