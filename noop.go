package nslog

type noopLogger struct{}

// Noop returns the inert logger: every emission is dropped, Fork returns the
// same logger and Scope runs its callback with it.
func Noop() Logger { return noopLogger{} }

func (noopLogger) Error(...any)             {}
func (noopLogger) Warn(...any)              {}
func (noopLogger) Info(...any)              {}
func (noopLogger) Debug(...any)             {}
func (noopLogger) Log(Level, ...any)        {}
func (noopLogger) Enabled(Level) bool       { return false }
func (n noopLogger) Fork(SubContext) Logger { return n }
func (noopLogger) SetLevel(Level)           {}
func (noopLogger) SetLevels(...Level)       {}
func (noopLogger) Context() Context         { return Context{} }

func (n noopLogger) Scope(_ SubContext, fn func(Logger) error) error {
	return fn(n)
}
