package nslog

// Envelope accompanies every record handed to a Sink.
type Envelope struct {
	Level   Level
	Context *Context
}

// Sink writes records that passed every gate. Implementations must treat the
// envelope's Context as read-only.
type Sink interface {
	Print(env Envelope, messages ...any)
}

// SinkFactory builds the Sink installed by Configure.
type SinkFactory func() Sink

// SinkFunc adapts a function into a Sink.
type SinkFunc func(env Envelope, messages ...any)

// Print calls f.
func (f SinkFunc) Print(env Envelope, messages ...any) { f(env, messages...) }
