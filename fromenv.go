package nslog

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of the variables read by ConfigureFromEnv.
const DefaultEnvPrefix = "NSLOG_"

// EnvOption customizes ConfigureFromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix   string
	settings Settings
	writer   io.Writer
	options  []ConfigOption
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) { cfg.prefix = prefix }
}

// WithEnvSettings seeds ConfigureFromEnv with explicit Settings. Environment
// values override them.
func WithEnvSettings(s Settings) EnvOption {
	return func(cfg *envConfig) { cfg.settings = s }
}

// WithEnvWriter sets the writer used for every level unless OUTPUT says
// otherwise.
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) { cfg.writer = w }
}

// WithEnvConfig appends ConfigOptions applied after the environment derived
// ones, for the callbacks that cannot be expressed as variables.
func WithEnvConfig(opts ...ConfigOption) EnvOption {
	return func(cfg *envConfig) { cfg.options = append(cfg.options, opts...) }
}

// ConfigureFromEnv configures r with a console sink described by environment
// variables. Recognised variables are: {prefix}LEVEL, LEVELS, FORMAT
// (text|json), NAMESPACE_PREFIX, NAMESPACE_COLORS, APPEND_TAGS, APPEND_EXTRA,
// RENDERER (auto|ansi|css|plain), NO_COLOR, FORCE_COLOR and OUTPUT. OUTPUT
// accepts stdout, stderr, default, a file path, or stdout+/stderr+<path> to
// tee. Invalid values are ignored.
func (r *Runtime) ConfigureFromEnv(opts ...EnvOption) error {
	cfg := envConfig{prefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	s := cfg.settings
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		s.Level = value
	}
	if value, ok := lookupEnv(prefix, "LEVELS"); ok {
		s.Levels = strings.Split(value, ",")
	}
	if value, ok := lookupEnv(prefix, "FORMAT"); ok {
		s.Format = value
	}
	for key, dst := range map[string]**bool{
		"NAMESPACE_PREFIX": &s.NamespacePrefix,
		"NAMESPACE_COLORS": &s.NamespaceColors,
		"APPEND_TAGS":      &s.AppendTags,
		"APPEND_EXTRA":     &s.AppendExtra,
	} {
		if value, ok := lookupEnv(prefix, key); ok {
			if parsed, ok := parseEnvBool(value); ok {
				*dst = &parsed
			}
		}
	}
	if value, ok := lookupEnv(prefix, "RENDERER"); ok {
		s.Renderer = value
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			s.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			s.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		s.Output = value
	}
	return r.configureFromSettings(s, cfg.writer, cfg.options)
}

// ConfigureFromEnv configures the Default runtime from the environment.
func ConfigureFromEnv(opts ...EnvOption) error {
	return Default().ConfigureFromEnv(opts...)
}

func lookupEnv(prefix, key string) (string, bool) {
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
