// Package cli holds the logging setup shared by the mdcs commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mdcs-protocol/mdcs-go/pkg/log"
)

// NewLogger builds an slog.Logger writing to w.
// level is one of debug, info, warn, error; format is text or json.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (must be text or json)", format)
	}
}

// ProtocolLogger is the protocol event sink of a command.
type ProtocolLogger struct {
	log.Logger

	file *log.FileLogger
}

// NewProtocolLogger opens the protocol log at path when path is set.
// With trace, events are also written to logger at debug level.
// The result is nil when neither sink is wanted.
func NewProtocolLogger(path string, logger *slog.Logger, trace bool) (*ProtocolLogger, error) {
	var sinks []log.Logger
	p := &ProtocolLogger{}

	if path != "" {
		file, err := log.NewFileLogger(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create protocol logger: %w", err)
		}
		p.file = file
		sinks = append(sinks, file)
	}
	if trace && logger != nil {
		sinks = append(sinks, log.NewSlogAdapter(logger))
	}

	switch len(sinks) {
	case 0:
		return nil, nil
	case 1:
		p.Logger = sinks[0]
	default:
		p.Logger = log.NewMultiLogger(sinks...)
	}
	return p, nil
}

// Close closes the protocol log file, if any.
func (p *ProtocolLogger) Close() error {
	if p == nil || p.file == nil {
		return nil
	}
	return p.file.Close()
}

// Sink returns the logger to hand to services, or nil. It avoids a typed
// nil inside the log.Logger interface.
func (p *ProtocolLogger) Sink() log.Logger {
	if p == nil {
		return nil
	}
	return p
}
