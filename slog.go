package nslog

import (
	"context"
	"log/slog"
	"time"
)

// NewSlogHandler returns a slog.Handler that emits through logger. Record
// attributes become Extra, groups passed to WithGroup become namespace
// segments and attributes inside slog.Group values are flattened with dotted
// keys. Trace identifiers of the record's context are added like WithTrace.
func NewSlogHandler(logger Logger) slog.Handler {
	if logger == nil {
		logger = Noop()
	}
	return slogHandler{logger: logger}
}

type slogHandler struct {
	logger Logger
}

// LevelFromSlog maps a slog level onto the four nslog levels.
func LevelFromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return ErrorLevel
	case level >= slog.LevelWarn:
		return WarnLevel
	case level >= slog.LevelInfo:
		return InfoLevel
	default:
		return DebugLevel
	}
}

func (h slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(LevelFromSlog(level))
}

func (h slogHandler) Handle(ctx context.Context, rec slog.Record) error {
	level := LevelFromSlog(rec.Level)
	if !h.logger.Enabled(level) {
		return nil
	}
	extra := TraceExtra(ctx)
	if rec.NumAttrs() > 0 {
		if extra == nil {
			extra = make(Extra, rec.NumAttrs())
		}
		rec.Attrs(func(a slog.Attr) bool {
			appendAttr(extra, "", a)
			return true
		})
	}
	logger := h.logger
	if len(extra) > 0 {
		logger = logger.Fork(SubContext{Extra: extra})
	}
	logger.Log(level, rec.Message)
	return nil
}

func (h slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	extra := make(Extra, len(attrs))
	for _, a := range attrs {
		appendAttr(extra, "", a)
	}
	return slogHandler{logger: h.logger.Fork(SubContext{Extra: extra})}
}

func (h slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return slogHandler{logger: h.logger.Fork(SubContext{Namespace: name})}
}

func appendAttr(dst Extra, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	switch v.Kind() {
	case slog.KindGroup:
		for _, ga := range v.Group() {
			appendAttr(dst, key, ga)
		}
	case slog.KindString:
		dst[key] = v.String()
	case slog.KindInt64:
		dst[key] = v.Int64()
	case slog.KindUint64:
		dst[key] = v.Uint64()
	case slog.KindFloat64:
		dst[key] = v.Float64()
	case slog.KindBool:
		dst[key] = v.Bool()
	case slog.KindDuration:
		dst[key] = v.Duration().String()
	case slog.KindTime:
		dst[key] = v.Time().Format(time.RFC3339Nano)
	default:
		if err, ok := v.Any().(error); ok {
			dst[key] = err.Error()
			return
		}
		dst[key] = v.Any()
	}
}
