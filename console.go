package nslog

import (
	"io"
	"os"

	"pkt.systems/nslog/safejson"
)

// ConsoleOptions configures NewConsoleSink.
type ConsoleOptions struct {
	// Output receives every level when set.
	Output io.Writer
	// Outputs overrides the writer of individual levels. It wins over Output.
	Outputs map[Level]io.Writer
	// Renderer selects the text colouring; the zero value means RendererAuto.
	Renderer RendererMode
	// NoColor forces RendererPlain when Renderer is auto.
	NoColor bool
	// ForceColor forces RendererANSI when Renderer is auto, even if the
	// writer is not a terminal. NoColor wins when both are set.
	ForceColor bool
}

type consoleSink struct {
	writers   [DebugLevel + 1]io.Writer
	renderers [DebugLevel + 1]Renderer
}

// NewConsoleSink returns the default Sink. Errors and warnings go to stderr,
// info and debug to stdout unless overridden. Writer and renderer of every
// level are resolved once here.
func NewConsoleSink(opts ConsoleOptions) Sink {
	s := &consoleSink{}
	for _, level := range Levels() {
		w := opts.Output
		if w == nil {
			w = defaultConsoleWriter(level)
		}
		if lw, ok := opts.Outputs[level]; ok && lw != nil {
			w = lw
		}
		s.writers[level] = w
		s.renderers[level] = NewRenderer(resolveRenderer(opts, w))
	}
	return s
}

// ConsoleSinkFactory returns a SinkFactory building a console sink with opts.
func ConsoleSinkFactory(opts ConsoleOptions) SinkFactory {
	return func() Sink { return NewConsoleSink(opts) }
}

func defaultConsoleWriter(level Level) io.Writer {
	switch level {
	case ErrorLevel, WarnLevel:
		return os.Stderr
	default:
		return os.Stdout
	}
}

func resolveRenderer(opts ConsoleOptions, w io.Writer) RendererMode {
	switch opts.Renderer {
	case RendererANSI, RendererCSS, RendererPlain:
		return opts.Renderer
	}
	if opts.NoColor {
		return RendererPlain
	}
	if opts.ForceColor || isTerminal(w) {
		return RendererANSI
	}
	return RendererPlain
}

func (s *consoleSink) Print(env Envelope, messages ...any) {
	if !env.Level.Valid() {
		return
	}
	ctx := env.Context
	if ctx == nil {
		ctx = &Context{}
	}
	cfg := ctx.Config
	if cfg == nil {
		def := defaultConfig()
		cfg = &def
	}

	lw := acquireLineWriter(s.writers[env.Level])
	switch cfg.Format {
	case FormatJSON:
		s.writeJSON(lw, env.Level, ctx, messages)
	default:
		s.writeText(lw, env.Level, ctx, cfg, messages)
	}
	lw.finishLine()
	lw.flush()
	releaseLineWriter(lw)

	if cfg.Hook != nil {
		cfg.Hook(env.Level, ctx, messages...)
	}
}

// jsonRecord is one JSON line. The namespace is omitted at the root; tags and
// extra are always present, empty objects included.
type jsonRecord struct {
	Level     string   `json:"level"`
	Namespace []string `json:"namespace,omitempty"`
	Tags      Tags     `json:"tags"`
	Extra     Extra    `json:"extra"`
	Messages  []any    `json:"messages"`
}

func (s *consoleSink) writeJSON(lw *lineWriter, level Level, ctx *Context, messages []any) {
	msgs := make([]any, len(messages))
	for i, msg := range messages {
		if err, ok := msg.(error); ok && err != nil {
			msgs[i] = err.Error()
			continue
		}
		msgs[i] = msg
	}
	tags, extra := ctx.Tags, ctx.Extra
	if tags == nil {
		tags = Tags{}
	}
	if extra == nil {
		extra = Extra{}
	}
	lw.writeString(safejson.Stringify(jsonRecord{
		Level:     level.String(),
		Namespace: ctx.Namespace,
		Tags:      tags,
		Extra:     extra,
		Messages:  msgs,
	}, 0))
}

func (s *consoleSink) writeText(lw *lineWriter, level Level, ctx *Context, cfg *Config, messages []any) {
	renderer := s.renderers[level]
	if cfg.EnableNamespacePrefix && len(ctx.Namespace) > 0 {
		if cfg.EnableNamespacePrefixColors {
			writeChunks(lw, renderer.Prefix(ctx.Namespace))
		} else {
			lw.writeChunk(ctx.NamespacePath())
		}
	}
	writeChunks(lw, renderer.Messages(level, messages))
	if cfg.AppendTagsForTextPrint && len(ctx.Tags) > 0 {
		if cfg.TransformTagsForTextPrint != nil {
			lw.writeChunk(chunkText(cfg.TransformTagsForTextPrint(ctx.Tags, ctx)))
		} else {
			lw.writeChunk(chunkText(ctx.Tags))
		}
	}
	if cfg.AppendExtraForTextPrint && len(ctx.Extra) > 0 {
		if cfg.TransformExtraForTextPrint != nil {
			lw.writeChunk(chunkText(cfg.TransformExtraForTextPrint(ctx.Extra, ctx)))
		} else {
			lw.writeChunk(chunkText(ctx.Extra))
		}
	}
}

func writeChunks(lw *lineWriter, chunks []any) {
	for _, chunk := range chunks {
		lw.writeChunk(chunkText(chunk))
	}
}

// chunkText renders one console chunk: strings verbatim, errors and
// Stringers by their text, scalars via scalarText and composites as JSON.
func chunkText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	}
	if s, ok := scalarText(v); ok {
		return s
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return safejson.Stringify(v, 0)
}
