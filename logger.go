package nslog

import "sync/atomic"

// Logger is the main interface of nslog.
type Logger interface {
	// Error logs messages at ErrorLevel.
	Error(messages ...any)
	// Warn logs messages at WarnLevel.
	Warn(messages ...any)
	// Info logs messages at InfoLevel.
	Info(messages ...any)
	// Debug logs messages at DebugLevel.
	Debug(messages ...any)
	// Log emits messages at the supplied level.
	Log(level Level, messages ...any)

	// Enabled reports whether a record at level would pass the level gates.
	// Config.Filter and the configured check are not consulted.
	Enabled(level Level) bool

	// Fork returns a logger whose context is the receiver's merged with sub.
	// The new logger starts without level overrides.
	Fork(sub SubContext) Logger

	// Scope hands fn a logger forked with sub and returns fn's error. The
	// derived logger is not retained.
	Scope(sub SubContext, fn func(Logger) error) error

	// SetLevel overrides the minimum level of this logger only. NoLevel
	// clears the override.
	SetLevel(level Level)

	// SetLevels overrides the allow-set of this logger only. Duplicates and
	// unrecognised levels are dropped; no arguments clear the override.
	SetLevels(levels ...Level)

	// Context returns a copy of the logger's accumulated context.
	Context() Context
}

// ScopeValue hands fn a logger forked from l with sub and returns whatever fn
// returns.
func ScopeValue[T any](l Logger, sub SubContext, fn func(Logger) T) T {
	return fn(l.Fork(sub))
}

type logger struct {
	rt     *Runtime
	ctx    *Context
	level  atomic.Int32
	levels atomic.Uint32
}

func newLogger(rt *Runtime, ctx *Context) *logger {
	l := &logger{rt: rt, ctx: ctx}
	l.level.Store(int32(NoLevel))
	return l
}

func (l *logger) Error(messages ...any) { l.log(ErrorLevel, messages) }
func (l *logger) Warn(messages ...any)  { l.log(WarnLevel, messages) }
func (l *logger) Info(messages ...any)  { l.log(InfoLevel, messages) }
func (l *logger) Debug(messages ...any) { l.log(DebugLevel, messages) }

func (l *logger) Log(level Level, messages ...any) { l.log(level, messages) }

func (l *logger) log(level Level, messages []any) {
	if !l.Enabled(level) {
		return
	}
	sink := l.rt.installedSink()
	if sink == nil {
		return
	}
	if filter := l.ctx.Config.Filter; filter != nil && !filter(l.ctx.Namespace, l.ctx.Tags) {
		return
	}
	sink.Print(Envelope{Level: level, Context: l.ctx}, messages...)
}

func (l *logger) Enabled(level Level) bool {
	if !level.Valid() {
		return false
	}
	allowed := levelSet(l.levels.Load())
	if !allowed.present() {
		allowed = levelSet(l.rt.levels.Load())
	}
	if !allowed.allows(level) {
		return false
	}
	threshold := Level(l.level.Load())
	if threshold == NoLevel {
		threshold = l.rt.LogLevel()
	}
	return CanEmit(level, threshold)
}

func (l *logger) Fork(sub SubContext) Logger {
	return newLogger(l.rt, mergeContexts(l.ctx, sub))
}

func (l *logger) Scope(sub SubContext, fn func(Logger) error) error {
	return fn(l.Fork(sub))
}

func (l *logger) SetLevel(level Level) {
	if level != NoLevel && !level.Valid() {
		return
	}
	l.level.Store(int32(level))
}

func (l *logger) SetLevels(levels ...Level) {
	if len(levels) == 0 {
		l.levels.Store(0)
		return
	}
	l.levels.Store(uint32(newLevelSet(levels...)))
}

func (l *logger) Context() Context {
	return l.ctx.clone()
}
