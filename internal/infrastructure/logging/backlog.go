package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

const defaultBacklogSize = 256

type backlogLevel int

const (
	backlogDebug backlogLevel = iota
	backlogInfo
	backlogWarn
	backlogError
)

type backlogEntry struct {
	ctx    context.Context
	level  backlogLevel
	msg    string
	fields []interface{}
}

// Backlog holds entries logged during bootstrap, before configuration has
// decided where logs go. The oldest entries are dropped once full.
type Backlog struct {
	mu      sync.Mutex
	size    int
	entries []backlogEntry
	dropped int
}

// NewBacklog creates a backlog holding at most size entries.
func NewBacklog(size int) *Backlog {
	if size <= 0 {
		size = defaultBacklogSize
	}
	return &Backlog{size: size}
}

// Logger returns a ports.Logger that records into the backlog.
func (b *Backlog) Logger() ports.Logger {
	return &backlogLogger{backlog: b}
}

func (b *Backlog) record(entry backlogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.size {
		b.entries = append(b.entries[:0], b.entries[1:]...)
		b.dropped++
	}
	b.entries = append(b.entries, entry)
}

// Drain replays every recorded entry into target in order and empties the
// backlog. It returns the number of entries lost to overflow.
func (b *Backlog) Drain(target ports.Logger) int {
	b.mu.Lock()
	entries := b.entries
	dropped := b.dropped
	b.entries = nil
	b.dropped = 0
	b.mu.Unlock()

	if target == nil {
		return dropped
	}
	for _, e := range entries {
		switch e.level {
		case backlogDebug:
			target.Debug(e.ctx, e.msg, e.fields...)
		case backlogWarn:
			target.Warn(e.ctx, e.msg, e.fields...)
		case backlogError:
			target.Error(e.ctx, e.msg, e.fields...)
		default:
			target.Info(e.ctx, e.msg, e.fields...)
		}
	}
	return dropped
}

type backlogLogger struct {
	backlog *Backlog
	fields  []interface{}
}

func (l *backlogLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, backlogDebug, msg, fields)
}

func (l *backlogLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, backlogInfo, msg, fields)
}

func (l *backlogLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, backlogWarn, msg, fields)
}

func (l *backlogLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, backlogError, msg, fields)
}

func (l *backlogLogger) With(fields ...interface{}) ports.Logger {
	return &backlogLogger{
		backlog: l.backlog,
		fields:  append(append([]interface{}(nil), l.fields...), fields...),
	}
}

func (l *backlogLogger) record(ctx context.Context, level backlogLevel, msg string, fields []interface{}) {
	if l == nil || l.backlog == nil {
		return
	}
	l.backlog.record(backlogEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}(nil), l.fields...), fields...),
	})
}
