package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

const (
	// FormatText renders human-readable, optionally coloured lines.
	FormatText = "text"
	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer     io.Writer
	Level      string
	Format     string
	TimeFormat string
	Prefix     string
	Layer      string
	Component  string
	Fields     map[string]interface{}
}

// Logger implements ports.Logger using charmbracelet/log.
type Logger struct {
	base   *cblog.Logger
	fields []interface{}
	layer  string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter, err := formatterFor(opts.Format)
	if err != nil {
		return nil, err
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.Kitchen
		if formatter == cblog.JSONFormatter {
			timeFormat = time.RFC3339
		}
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		TimeFormat:      timeFormat,
		ReportTimestamp: true,
		Formatter:       formatter,
		Fields:          sortedPairs(opts.Fields),
	})

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{base: base, fields: fields, layer: layer}, nil
}

func formatterFor(format string) (cblog.Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return cblog.TextFormatter, nil
	case FormatJSON:
		return cblog.JSONFormatter, nil
	case "logfmt":
		return cblog.LogfmtFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", format)
	}
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, cblog.DebugLevel, msg, fields)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, cblog.InfoLevel, msg, fields)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, cblog.WarnLevel, msg, fields)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, cblog.ErrorLevel, msg, fields)
}

// With derives a new logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := append(append([]interface{}(nil), l.fields...), fields...)
	return &Logger{base: l.base, fields: next, layer: l.layer}
}

func (l *Logger) emit(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.base == nil {
		return
	}
	extras := map[string]interface{}{"layer": l.layer}
	if id := ports.GetCorrelationID(ctx); id != "" {
		extras["correlation_id"] = id
	}
	l.base.Log(level, msg, mergeFields(l.fields, fields, extras)...)
}

func sortedPairs(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		out = append(out, k, input[k])
	}
	return out
}

// mergeFields flattens persistent fields, call-site fields and extras into a
// single key/value list. Later keys override earlier ones but keep the first
// position; non-string keys and empty extras are skipped.
func mergeFields(base, additions []interface{}, extras map[string]interface{}) []interface{} {
	values := make(map[string]interface{})
	var order []string

	put := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = value
	}
	putPairs := func(pairs []interface{}) {
		for i := 0; i+1 < len(pairs); i += 2 {
			if key, ok := pairs[i].(string); ok {
				put(key, pairs[i+1])
			}
		}
	}

	putPairs(base)
	putPairs(additions)

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		put(key, extras[key])
	}

	out := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		out = append(out, key, values[key])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
