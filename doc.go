// Package nslog is a namespaced logging front end. Loggers accumulate a
// namespace chain, tags and extra metadata through Fork and Scope, gate
// records by level, and hand the survivors to a pluggable Sink. The default
// console sink renders text lines with a deterministic colour per namespace
// segment, or one JSON record per line.
//
// # Design overview
//
//   - Nothing is formatted before every gate passed: the allow-set, the
//     minimum level, the configured check and Config.Filter run in that order.
//   - Contexts are immutable once built. Fork allocates fresh maps so a parent
//     is never touched by its children.
//   - A Runtime is configured once. The sink and root Config are installed by
//     the first Configure; later calls fail with ErrAlreadyConfigured.
//   - The console sink resolves its writer and Renderer per level when it is
//     built, so the hot path never probes the terminal.
//
// # Usage
//
//	if err := nslog.Configure(nil, nslog.WithFormat(nslog.FormatText)); err != nil {
//		panic(err)
//	}
//	log := nslog.For("billing").Fork(nslog.SubContext{
//		Namespace: "invoices",
//		Extra:     nslog.Extra{"tenant": "acme"},
//	})
//	log.Info("issued", 42)
//
// Scope derives a context that only lives for a callback:
//
//	err := log.Scope(nslog.SubContext{Namespace: "retry"}, func(l nslog.Logger) error {
//		l.Warn("attempt", 2)
//		return nil
//	})
//
// Namespaces listed in DEBUG_IGNORE (comma separated, case insensitive) get
// the null logger from For.
//
// # Integration notes
//
//   - ConfigureFromEnv and LoadSettings/ConfigureFromSettings configure a
//     Runtime from NSLOG_* variables or TOML/YAML files.
//   - NewSlogHandler and LogLogger bridge log/slog and the standard library
//     *log.Logger.
//   - WithTrace adds OpenTelemetry trace identifiers to Extra.
//   - ContextWithLogger and Ctx carry loggers through context.Context.
package nslog
