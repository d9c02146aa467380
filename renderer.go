package nslog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"pkt.systems/nslog/ansi"
	"pkt.systems/nslog/color"
	"pkt.systems/nslog/css"
)

// RendererMode selects how the console sink colours text output.
type RendererMode string

const (
	// RendererAuto picks ANSI for terminals and plain otherwise.
	RendererAuto RendererMode = "auto"
	// RendererANSI emits 256-colour escape sequences.
	RendererANSI RendererMode = "ansi"
	// RendererCSS emits %c markers followed by CSS declarations for styled
	// consoles.
	RendererCSS RendererMode = "css"
	// RendererPlain emits no colour at all.
	RendererPlain RendererMode = "plain"
)

// ParseRenderer converts auto, ansi, css or plain (case insensitive) into a
// RendererMode. "none" and "off" are accepted as plain.
func ParseRenderer(value string) (RendererMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return RendererAuto, true
	case "ansi", "color", "colour":
		return RendererANSI, true
	case "css", "browser":
		return RendererCSS, true
	case "plain", "none", "off":
		return RendererPlain, true
	default:
		return RendererAuto, false
	}
}

// Renderer turns the namespace chain and the messages of a text record into
// console chunks.
type Renderer interface {
	// Prefix returns the chunks of the coloured namespace prefix.
	Prefix(namespace []string) []any
	// Messages returns the chunks for messages coloured for level.
	Messages(level Level, messages []any) []any
}

// NewRenderer returns the Renderer for mode. RendererAuto resolves to plain;
// the console sink resolves auto against its writer before calling this.
func NewRenderer(mode RendererMode) Renderer {
	switch mode {
	case RendererANSI:
		return ansiRenderer{}
	case RendererCSS:
		return cssRenderer{}
	default:
		return plainRenderer{}
	}
}

var levelColors = [...]*color.Triple{
	ErrorLevel: color.RGB(255, 39, 64).Ptr(),
	WarnLevel:  color.RGB(255, 185, 0).Ptr(),
	InfoLevel:  nil,
	DebugLevel: color.RGB(184, 211, 237).Ptr(),
}

// LevelColor returns the message colour used for level, or false when the
// level is rendered in the terminal's default colour.
func LevelColor(level Level) (color.Triple, bool) {
	if !level.Valid() || levelColors[level] == nil {
		return color.Triple{}, false
	}
	return *levelColors[level], true
}

func levelStyle(level Level) color.Style {
	if c, ok := LevelColor(level); ok {
		return color.Foreground(c)
	}
	return color.Style{}
}

type ansiRenderer struct{}

func (ansiRenderer) Prefix(namespace []string) []any {
	parts := make([]string, len(namespace))
	for i, ns := range namespace {
		parts[i] = ansi.Wrap(ns, color.NamespaceStyle(ns))
	}
	return []any{strings.Join(parts, "/")}
}

func (ansiRenderer) Messages(level Level, messages []any) []any {
	style := levelStyle(level)
	out := make([]any, len(messages))
	for i, msg := range messages {
		if s, ok := scalarText(msg); ok {
			out[i] = ansi.Wrap(s, style)
			continue
		}
		out[i] = msg
	}
	return out
}

type cssRenderer struct{}

func (cssRenderer) Prefix(namespace []string) []any {
	contents := make([]string, len(namespace))
	styles := make([]any, 0, len(namespace)+1)
	styles = append(styles, nil)
	for i, ns := range namespace {
		content, style := css.Wrap(ns, color.NamespaceStyle(ns))
		contents[i] = content
		styles = append(styles, style)
	}
	styles[0] = strings.Join(contents, "/")
	return styles
}

func (cssRenderer) Messages(level Level, messages []any) []any {
	style := levelStyle(level)
	contents := make([]string, len(messages))
	out := make([]any, 1, len(messages)+1)
	for i, msg := range messages {
		if s, ok := scalarText(msg); ok && msg != nil {
			content, decl := css.Wrap(s, style)
			contents[i] = content
			out = append(out, decl)
			continue
		}
		contents[i] = "%o"
		out = append(out, msg)
	}
	out[0] = strings.Join(contents, "  ")
	return out
}

type plainRenderer struct{}

func (plainRenderer) Prefix(namespace []string) []any {
	return []any{strings.Join(namespace, "/")}
}

func (plainRenderer) Messages(_ Level, messages []any) []any {
	return messages
}

// scalarText renders strings, numbers, booleans and nil as text and reports
// false for anything composite.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "null", true
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case error, fmt.Stringer:
		return "", false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v), true
	}
	return "", false
}
