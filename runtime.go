package nslog

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// ErrAlreadyConfigured is returned by Configure on every call after the first.
var ErrAlreadyConfigured = errors.New("logger has been configured")

// IgnoreEnvKey names the environment variable holding the namespace ignore
// list read when the default Runtime is created.
const IgnoreEnvKey = "DEBUG_IGNORE"

const (
	stateUnconfigured uint32 = iota
	stateConfigured
)

type sinkSlot struct {
	sink Sink
}

// Runtime owns the state shared by a tree of loggers: the installed sink, the
// root Config, the runtime-wide level gate and the namespace ignore list.
// Most programs use the process-wide Default runtime through the package
// level helpers; tests and embedders can build isolated ones with NewRuntime.
type Runtime struct {
	mu     sync.Mutex
	state  atomic.Uint32
	sink   atomic.Pointer[sinkSlot]
	level  atomic.Int32
	levels atomic.Uint32
	ignore atomic.Pointer[ignoreList]

	config *Config
	root   *logger
}

// NewRuntime returns an unconfigured Runtime with the default Config, a
// runtime-wide level of info and every level allowed.
func NewRuntime() *Runtime {
	cfg := defaultConfig()
	r := &Runtime{config: &cfg}
	r.level.Store(int32(InfoLevel))
	r.levels.Store(uint32(levelSetAll))
	r.ignore.Store(&ignoreList{})
	r.root = newLogger(r, &Context{Tags: Tags{}, Extra: Extra{}, Config: r.config})
	return r
}

var defaultRuntime = sync.OnceValue(func() *Runtime {
	r := NewRuntime()
	r.SetIgnore(os.Getenv(IgnoreEnvKey))
	return r
})

// Default returns the process-wide Runtime, creating it on first use.
func Default() *Runtime {
	return defaultRuntime()
}

// Configure installs the sink built by factory and applies opts to the root
// Config. It succeeds once; later calls return an error wrapping
// ErrAlreadyConfigured and leave the installed sink untouched. A nil factory
// selects the console sink with default options.
func (r *Runtime) Configure(factory SinkFactory, opts ...ConfigOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Load() == stateConfigured {
		return fmt.Errorf("nslog: configure: %w", ErrAlreadyConfigured)
	}
	if factory == nil {
		factory = ConsoleSinkFactory(ConsoleOptions{})
	}
	sink := factory()
	for _, opt := range opts {
		if opt != nil {
			opt(r.config)
		}
	}
	r.sink.Store(&sinkSlot{sink: sink})
	r.state.Store(stateConfigured)
	return nil
}

// Configured reports whether Configure has succeeded.
func (r *Runtime) Configured() bool {
	return r.state.Load() == stateConfigured
}

// Root returns the root logger of r.
func (r *Runtime) Root() Logger {
	return r.root
}

// SetLogLevel sets the runtime-wide minimum level used by loggers without an
// override. Unrecognised levels are ignored.
func (r *Runtime) SetLogLevel(level Level) {
	if !level.Valid() {
		return
	}
	r.level.Store(int32(level))
}

// LogLevel returns the runtime-wide minimum level.
func (r *Runtime) LogLevel() Level {
	return Level(r.level.Load())
}

// SetLogLevels sets the runtime-wide allow-set. Levels are deduplicated and
// unrecognised ones dropped. An empty list blocks every level; pass Levels()
// to allow them all again.
func (r *Runtime) SetLogLevels(levels ...Level) {
	r.levels.Store(uint32(newLevelSet(levels...)))
}

// LogLevels returns the runtime-wide allow-set.
func (r *Runtime) LogLevels() []Level {
	return levelSet(r.levels.Load()).levels()
}

func (r *Runtime) installedSink() Sink {
	if r.state.Load() != stateConfigured {
		return nil
	}
	slot := r.sink.Load()
	if slot == nil {
		return nil
	}
	return slot.sink
}

// Configure configures the Default runtime.
func Configure(factory SinkFactory, opts ...ConfigOption) error {
	return Default().Configure(factory, opts...)
}

// Root returns the root logger of the Default runtime.
func Root() Logger {
	return Default().Root()
}

// SetLogLevel sets the minimum level of the Default runtime.
func SetLogLevel(level Level) {
	Default().SetLogLevel(level)
}

// SetLogLevels sets the allow-set of the Default runtime.
func SetLogLevels(levels ...Level) {
	Default().SetLogLevels(levels...)
}
