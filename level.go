package nslog

import "strings"

// Level is a log severity. Lower values are more severe; a logger with
// threshold t emits every level whose rank is at or below t.
type Level int8

const (
	// ErrorLevel defines error log level.
	ErrorLevel Level = iota
	// WarnLevel defines warn log level.
	WarnLevel
	// InfoLevel defines info log level.
	InfoLevel
	// DebugLevel defines debug log level.
	DebugLevel
	// NoLevel is the absence of a level. Passing it to Logger.SetLevel clears
	// the instance override.
	NoLevel Level = -1
)

// Levels lists every recognised level from most to least severe.
func Levels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
}

// Valid reports whether l is one of the four recognised levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= DebugLevel
}

// String returns the canonical lower-case name of l.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	default:
		return "nolevel"
	}
}

// ParseLevel converts a textual level into a Level value. It accepts "error",
// "warn", "warning", "info", "debug" and "none"/"nolevel" (case
// insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ErrorLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "info":
		return InfoLevel, true
	case "debug":
		return DebugLevel, true
	case "no", "nolevel", "none":
		return NoLevel, true
	default:
		return InfoLevel, false
	}
}

// ParseLevels parses a comma separated level list, skipping unknown entries.
func ParseLevels(value string) []Level {
	var out []Level
	for part := range strings.SplitSeq(value, ",") {
		if level, ok := ParseLevel(part); ok && level.Valid() {
			out = append(out, level)
		}
	}
	return out
}

// CanEmit reports whether a message at level passes threshold.
func CanEmit(level, threshold Level) bool {
	return level.Valid() && threshold.Valid() && level <= threshold
}

// levelSet is a bitmask of allowed levels. The high bit marks the set as
// present so an explicitly empty set can be told apart from no override.
type levelSet uint32

const (
	levelSetPresent levelSet = 1 << 31
	levelSetAll              = levelSetPresent | 1<<ErrorLevel | 1<<WarnLevel | 1<<InfoLevel | 1<<DebugLevel
)

// newLevelSet deduplicates levels and drops unrecognised values.
func newLevelSet(levels ...Level) levelSet {
	set := levelSetPresent
	for _, level := range levels {
		if level.Valid() {
			set |= 1 << uint(level)
		}
	}
	return set
}

func (s levelSet) present() bool { return s&levelSetPresent != 0 }

func (s levelSet) allows(level Level) bool {
	return level.Valid() && s&(1<<uint(level)) != 0
}

func (s levelSet) levels() []Level {
	if !s.present() {
		return nil
	}
	out := make([]Level, 0, 4)
	for _, level := range Levels() {
		if s.allows(level) {
			out = append(out, level)
		}
	}
	return out
}
