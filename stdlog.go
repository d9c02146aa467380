package nslog

import (
	"bytes"
	"log"
	"strings"
)

// LogLogger wraps a Logger into a stdlib *log.Logger. Every written line
// becomes one record; a leading "[level]" or "level:" marker selects the
// level, anything else is logged at info.
func LogLogger(logger Logger) *log.Logger {
	if logger == nil {
		logger = Noop()
	}
	return log.New(loggerWriter{logger: logger}, "", 0)
}

// LogLoggerWithLevel wraps a Logger into a stdlib *log.Logger that pins every
// line to level.
func LogLoggerWithLevel(logger Logger, level Level) *log.Logger {
	if logger == nil {
		logger = Noop()
	}
	return log.New(loggerWriter{logger: logger, pinned: true, level: level}, "", 0)
}

var linePrefixes = []struct {
	prefix string
	level  Level
}{
	{"trace", DebugLevel},
	{"debug", DebugLevel},
	{"info", InfoLevel},
	{"warning", WarnLevel},
	{"warn", WarnLevel},
	{"error", ErrorLevel},
	{"fatal", ErrorLevel},
	{"panic", ErrorLevel},
}

func classifyLineLevel(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexByte(trimmed, ']'); end > 1 {
			if lvl, ok := ParseLevel(trimmed[1:end]); ok && lvl.Valid() {
				return lvl, strings.TrimSpace(trimmed[end+1:])
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	for _, p := range linePrefixes {
		if !strings.HasPrefix(lowered, p.prefix) {
			continue
		}
		tail := strings.TrimLeft(trimmed[len(p.prefix):], ":- ")
		return p.level, strings.TrimSpace(tail)
	}
	return InfoLevel, trimmed
}

type loggerWriter struct {
	logger Logger
	pinned bool
	level  Level
}

func (w loggerWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(bytes.TrimRight(line, "\r")))
		if trimmed == "" {
			continue
		}
		if w.pinned {
			w.logger.Log(w.level, trimmed)
			continue
		}
		level, msg := classifyLineLevel(trimmed)
		w.logger.Log(level, msg)
	}
	return len(p), nil
}
