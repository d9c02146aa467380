package nslog

import "strings"

// Format selects how the console sink renders records.
type Format string

const (
	// FormatText emits human oriented lines with optional colours.
	FormatText Format = "text"
	// FormatJSON emits one safejson record per line.
	FormatJSON Format = "json"
)

// ParseFormat converts "text" or "json" (case insensitive) into a Format.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "text", "console":
		return FormatText, true
	case "json", "structured":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}

// Config is shared by every logger derived from a Runtime's root. It is
// patched once by Configure and read-only afterwards.
type Config struct {
	Format                      Format
	EnableNamespacePrefix       bool
	EnableNamespacePrefixColors bool
	AppendTagsForTextPrint      bool
	AppendExtraForTextPrint     bool

	// TransformTagsForTextPrint replaces the raw tags chunk in text output.
	TransformTagsForTextPrint func(tags Tags, ctx *Context) any
	// TransformExtraForTextPrint replaces the raw extra chunk in text output.
	TransformExtraForTextPrint func(extra Extra, ctx *Context) any
	// Filter must return true for a record to reach the sink.
	Filter func(namespace []string, tags Tags) bool
	// Hook runs after the sink wrote a record, whatever the format.
	Hook func(level Level, ctx *Context, messages ...any)
}

func defaultConfig() Config {
	return Config{
		Format:                      FormatText,
		EnableNamespacePrefix:       true,
		EnableNamespacePrefixColors: true,
		AppendTagsForTextPrint:      true,
		AppendExtraForTextPrint:     true,
	}
}

// ConfigOption patches the root Config during Configure.
type ConfigOption func(*Config)

// WithFormat selects text or JSON output.
func WithFormat(format Format) ConfigOption {
	return func(c *Config) { c.Format = format }
}

// WithNamespacePrefix toggles the namespace prefix in text output.
func WithNamespacePrefix(enabled bool) ConfigOption {
	return func(c *Config) { c.EnableNamespacePrefix = enabled }
}

// WithNamespacePrefixColors toggles per-namespace colours of the prefix.
func WithNamespacePrefixColors(enabled bool) ConfigOption {
	return func(c *Config) { c.EnableNamespacePrefixColors = enabled }
}

// WithTagsForTextPrint toggles the trailing tags chunk in text output.
func WithTagsForTextPrint(enabled bool) ConfigOption {
	return func(c *Config) { c.AppendTagsForTextPrint = enabled }
}

// WithExtraForTextPrint toggles the trailing extra chunk in text output.
func WithExtraForTextPrint(enabled bool) ConfigOption {
	return func(c *Config) { c.AppendExtraForTextPrint = enabled }
}

// WithTagsTransform installs Config.TransformTagsForTextPrint.
func WithTagsTransform(fn func(Tags, *Context) any) ConfigOption {
	return func(c *Config) { c.TransformTagsForTextPrint = fn }
}

// WithExtraTransform installs Config.TransformExtraForTextPrint.
func WithExtraTransform(fn func(Extra, *Context) any) ConfigOption {
	return func(c *Config) { c.TransformExtraForTextPrint = fn }
}

// WithFilter installs Config.Filter.
func WithFilter(fn func([]string, Tags) bool) ConfigOption {
	return func(c *Config) { c.Filter = fn }
}

// WithHook installs Config.Hook.
func WithHook(fn func(Level, *Context, ...any)) ConfigOption {
	return func(c *Config) { c.Hook = fn }
}
